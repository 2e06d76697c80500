package planner

import (
	"go-dispo/internal/middleware"
	"go-dispo/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	assignments.Use(middleware.ContextLogger(logger))
	{
		assignments.POST("/auto-assign",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "assign"),
			handler.AutoAssign,
		)
	}
}
