package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

const contextAccountKey = "account"

// Authenticator resolves a bearer token to exactly one non-blocked account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Account, error)
}

type AuthMiddleware struct {
	authSvc Authenticator
}

func NewAuthMiddleware(authSvc Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate verifies the bearer token and stores the acting account in the
// request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("invalid authorization format"))
			return
		}

		account, err := m.authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("invalid token"))
			return
		}

		c.Set(contextAccountKey, account)
		c.Next()
	}
}

// RequireRoles denies the request unless the acting account's role is in the
// allowed set. The role sets declared at route registration form the policy
// table; ownership checks stay with the individual operations.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("authentication required"))
			return
		}

		for _, role := range roles {
			if account.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, httputil.NewErrorResponse("insufficient role"))
	}
}

// CurrentAccount returns the authenticated account set by Authenticate, or
// nil on unauthenticated routes.
func CurrentAccount(c *gin.Context) *model.Account {
	if v, exists := c.Get(contextAccountKey); exists {
		if account, ok := v.(*model.Account); ok {
			return account
		}
	}
	return nil
}
