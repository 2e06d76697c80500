package seeder

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
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.POST("/generate",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "shift", "generate"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
	}
}
