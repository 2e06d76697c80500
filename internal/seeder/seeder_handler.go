package seeder

import (
	"net/http"
	"time"

	"go-dispo/internal/shared/apperror"
	"go-dispo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("seeder.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seeder.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	response.Error(c, http.StatusInternalServerError,
		apperror.CodeInternalError, "Internal server error", nil)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.svc.GenerateShiftInstances(c.Request.Context(), req.StartDate, req.Weeks)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := GenerateShiftsResponse{
		Created: make([]GeneratedShiftResponse, len(result.Created)),
		Errors:  result.Errors,
	}
	for i, inst := range result.Created {
		item := GeneratedShiftResponse{
			ID:       inst.ID.String(),
			Date:     inst.Date,
			StartDT:  inst.StartDT.Format(time.RFC3339),
			EndDT:    inst.EndDT.Format(time.RFC3339),
			Location: inst.Location,
		}
		if inst.TemplateID != nil {
			tid := inst.TemplateID.String()
			item.TemplateID = &tid
		}
		resp.Created[i] = item
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
