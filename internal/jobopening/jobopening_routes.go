package jobopening

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
	openings := r.Group("/job-openings")
	openings.Use(middleware.AuthMiddleware())
	openings.Use(middleware.ContextLogger(logger))
	{
		openings.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "jobopening", "read"),
			handler.GetAll,
		)

		openings.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "jobopening", "read"),
			handler.GetById,
		)

		openings.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "jobopening", "create"),
			handler.Create,
		)

		openings.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "jobopening", "update"),
			handler.Update,
		)

		openings.POST("/:id/close",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "jobopening", "update"),
			handler.ClosePosition,
		)

		openings.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "jobopening", "delete"),
			handler.Delete,
		)
	}
}
