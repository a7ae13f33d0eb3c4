package equipment

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
	equipment := r.Group("/equipment")
	equipment.Use(middleware.AuthMiddleware())
	equipment.Use(middleware.ContextLogger(logger))
	{
		equipment.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "equipment", "read"),
			handler.GetAll,
		)

		equipment.GET("/audit",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "equipment", "read"),
			handler.GetAuditReport,
		)

		equipment.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "equipment", "read"),
			handler.GetById,
		)

		equipment.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "create"),
			handler.Create,
		)

		equipment.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "update"),
			handler.Update,
		)

		equipment.POST("/:id/assign",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "transition"),
			handler.Assign,
		)

		equipment.POST("/:id/return",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "transition"),
			handler.Return,
		)

		equipment.POST("/:id/start-maintenance",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "transition"),
			handler.StartMaintenance,
		)

		equipment.POST("/:id/complete-maintenance",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "transition"),
			handler.CompleteMaintenance,
		)

		equipment.POST("/:id/retire",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "equipment", "transition"),
			handler.Retire,
		)

		equipment.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "equipment", "delete"),
			handler.Delete,
		)
	}
}
