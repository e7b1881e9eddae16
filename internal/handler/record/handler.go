package record

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/service/record"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/httputil"
)

type Handler struct {
	service *record.Service
}

func NewHandler(service *record.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	g := r.Group("/records")
	g.Use(authMW.Authenticate())
	{
		g.POST("", authMW.RequireRoles(model.RoleDoctor), h.Create)
		g.GET("", h.ListOwn)
		g.GET("/:patientID", h.ListForPatient)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	rec, err := h.service.Create(c.Request.Context(), middleware.CurrentAccount(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, rec)
}

func (h *Handler) ListOwn(c *gin.Context) {
	caller := middleware.CurrentAccount(c)

	records, err := h.service.ListForPatient(c.Request.Context(), caller, caller.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, records)
}

func (h *Handler) ListForPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid patient ID"))
		return
	}

	records, err := h.service.ListForPatient(c.Request.Context(), middleware.CurrentAccount(c), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, records)
}
