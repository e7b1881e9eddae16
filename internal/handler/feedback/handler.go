package feedback

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/service/feedback"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

type Handler struct {
	service *feedback.Service
}

func NewHandler(service *feedback.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	g := r.Group("/feedback")
	g.Use(authMW.Authenticate())
	{
		g.POST("", h.Create)
		g.GET("/me", h.ListMine)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	fb, err := h.service.Create(c.Request.Context(), middleware.CurrentAccount(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, fb)
}

func (h *Handler) ListMine(c *gin.Context) {
	entries, err := h.service.ListMine(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, entries)
}
