package salary

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
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetAll,
		)

		salaries.GET("/history",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.ListHistory,
		)

		salaries.GET("/history/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetHistory,
		)

		salaries.GET("/report",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetReport,
		)

		salaries.GET("/report/export",
			middleware.RateLimitByUser(0.2, 2),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.ExportReport,
		)

		salaries.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetById,
		)

		salaries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "salary", "create"),
			handler.Create,
		)

		salaries.POST("/bulk-update",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "salary", "update"),
			handler.BulkUpdate,
		)

		salaries.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "salary", "update"),
			handler.Update,
		)

		salaries.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "salary", "approve"),
			handler.Approve,
		)

		salaries.POST("/:id/reject",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "salary", "approve"),
			handler.Reject,
		)

		salaries.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "salary", "delete"),
			handler.Delete,
		)
	}
}
