package shift

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
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "shift", "read"),
			handler.GetAll,
		)

		shifts.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "shift", "read"),
			handler.GetByID,
		)

		shifts.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift", "create"),
			handler.Create,
		)

		shifts.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift", "update"),
			handler.Update,
		)
	}
}
