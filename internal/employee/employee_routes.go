package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetOptions,
		)

		employees.GET("/managers",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetManagerOptions,
		)

		employees.GET("/departments",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetDepartments,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetById,
		)

		employees.GET("/:id/profile",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetProfile,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
