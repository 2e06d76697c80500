package coordinator

import (
	"go-dispo/internal/middleware"
	"go-dispo/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	assignments.Use(middleware.ContextLogger(logger))
	{
		assignments.POST("/swap",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "coordinate"),
			middleware.Idempotency(rdb),
			handler.SwapAssignments,
		)

		assignments.POST("/bulk-update",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "coordinate"),
			middleware.Idempotency(rdb),
			handler.BulkUpdateAssignments,
		)
	}

	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.DELETE("/:id/cascade",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "shift", "delete"),
			handler.CascadeDeleteShiftInstance,
		)
	}
}
