package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/service/auth"
	"github.com/nikhilkumar-05/MediCare/internal/service/doctor"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

// Handler serves registration, login, token refresh and the profile
// endpoints shared by every role.
type Handler struct {
	authSvc   *auth.Service
	doctorSvc *doctor.Service
}

func NewHandler(authSvc *auth.Service, doctorSvc *doctor.Service) *Handler {
	return &Handler{authSvc: authSvc, doctorSvc: doctorSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	g := r.Group("/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.POST("/refresh", h.Refresh)
		g.GET("/doctors", h.ListDoctors)

		protected := g.Group("")
		protected.Use(authMW.Authenticate())
		{
			protected.GET("/me", h.Me)
			protected.GET("/profile", h.GetProfile)
			protected.PUT("/profile", h.UpdateProfile)
		}
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if resp.Account.Role == model.RoleDoctor {
		h.doctorSvc.InvalidateDirectory(c.Request.Context())
	}

	httputil.RespondWithCreated(c, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, tokens)
}

func (h *Handler) Me(c *gin.Context) {
	httputil.RespondWithSuccess(c, middleware.CurrentAccount(c))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctorSvc.ListDoctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.doctorSvc.GetOwnProfile(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	profile, err := h.doctorSvc.UpdateOwnProfile(c.Request.Context(), middleware.CurrentAccount(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, profile)
}
