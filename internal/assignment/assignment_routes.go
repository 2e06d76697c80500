package assignment

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
		assignments.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "assignment", "read"),
			handler.GetAll,
		)

		assignments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "assignment", "read"),
			handler.GetByID,
		)

		assignments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		assignments.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "update"),
			handler.Update,
		)

		assignments.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "assignment", "delete"),
			handler.Delete,
		)
	}
}
