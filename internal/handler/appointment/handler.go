package appointment

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/service/appointment"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	g := r.Group("/appointments")
	g.Use(authMW.Authenticate())
	{
		g.POST("", authMW.RequireRoles(model.RolePatient), h.Book)
		g.GET("/me", h.ListMine)
		g.PUT("/:id/status", authMW.RequireRoles(model.RoleDoctor, model.RoleAdmin), h.UpdateStatus)
	}
}

func (h *Handler) Book(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	appt, err := h.service.Book(c.Request.Context(), middleware.CurrentAccount(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, appt)
}

func (h *Handler) ListMine(c *gin.Context) {
	appointments, err := h.service.ListMine(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid appointment ID"))
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	appt, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, appt)
}
