package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/service/admin"
	"github.com/nikhilkumar-05/MediCare/internal/service/doctor"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

type Handler struct {
	service   *admin.Service
	doctorSvc *doctor.Service
}

func NewHandler(service *admin.Service, doctorSvc *doctor.Service) *Handler {
	return &Handler{service: service, doctorSvc: doctorSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	g := r.Group("/admin")
	g.Use(authMW.Authenticate(), authMW.RequireRoles(model.RoleAdmin))
	{
		g.POST("/doctors", h.CreateDoctor)
		g.GET("/users", h.ListUsers)
		g.PUT("/users/:id/block", h.ToggleBlock)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	account, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.doctorSvc.InvalidateDirectory(c.Request.Context())
	httputil.RespondWithCreated(c, account)
}

func (h *Handler) ListUsers(c *gin.Context) {
	accounts, err := h.service.ListAccounts(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, accounts)
}

func (h *Handler) ToggleBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid account ID"))
		return
	}

	account, err := h.service.ToggleBlock(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, account)
}
