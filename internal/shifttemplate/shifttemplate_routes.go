package shifttemplate

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
	templates := r.Group("/shift-templates")
	templates.Use(middleware.AuthMiddleware())
	templates.Use(middleware.ContextLogger(logger))
	{
		templates.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "shift_template", "read"),
			handler.GetAll,
		)

		templates.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "shift_template", "read"),
			handler.GetByID,
		)

		templates.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift_template", "create"),
			handler.Create,
		)

		templates.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift_template", "update"),
			handler.Update,
		)

		// Soft delete deactivates the template and its generated instances.
		templates.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift_template", "delete"),
			handler.SoftDelete,
		)

		templates.POST("/:id/restore",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "shift_template", "update"),
			handler.Restore,
		)

		templates.DELETE("/:id/hard",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "shift_template", "delete"),
			handler.HardDelete,
		)
	}
}
