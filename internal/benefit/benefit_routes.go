package benefit

import (
	"hr-admin/internal/middleware"
	"hr-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	benefits := r.Group("/benefits")
	benefits.Use(middleware.AuthMiddleware())
	benefits.Use(middleware.ContextLogger(logger))
	{
		benefits.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "benefit", "read"),
			handler.GetAll,
		)

		benefits.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "benefit", "read"),
			handler.GetById,
		)

		benefits.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "benefit", "create"),
			handler.Create,
		)

		benefits.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "benefit", "update"),
			handler.Update,
		)

		benefits.POST("/:id/activate",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "benefit", "update"),
			handler.Activate,
		)

		benefits.POST("/:id/deactivate",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "benefit", "update"),
			handler.Deactivate,
		)

		benefits.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "benefit", "delete"),
			handler.Delete,
		)
	}
}
