package person

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
	persons := r.Group("/persons")
	persons.Use(middleware.AuthMiddleware())
	persons.Use(middleware.ContextLogger(logger))
	{
		persons.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "person", "read"),
			handler.GetAll,
		)

		persons.GET("/options",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "person", "read"),
			handler.GetOptions,
		)

		persons.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "person", "read"),
			handler.GetByID,
		)

		persons.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "person", "create"),
			handler.Create,
		)

		persons.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "person", "update"),
			handler.Update,
		)

		persons.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "person", "delete"),
			handler.SoftDelete,
		)

		persons.POST("/:id/restore",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "person", "update"),
			handler.Restore,
		)

		// Physical removal; rejected while assignments still reference the person.
		persons.DELETE("/:id/hard",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "person", "delete"),
			handler.HardDelete,
		)
	}
}
