package coordinator

import (
	"net/http"

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
	l := zap.L().Named("coordinator.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("coordinator.handler")
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

func (h *Handler) SwapAssignments(c *gin.Context) {
	var req SwapAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.SwapAssignments(c.Request.Context(), req.AssignmentA, req.AssignmentB)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkUpdateAssignments(c *gin.Context) {
	var req BulkUpdateAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.BulkUpdateAssignments(c.Request.Context(), req.Updates)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CascadeDeleteShiftInstance(c *gin.Context) {
	resp, err := h.svc.CascadeDeleteShiftInstance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
