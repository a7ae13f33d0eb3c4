package candidate

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
	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "candidate", "read"),
			handler.GetAll,
		)

		candidates.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "candidate", "read"),
			handler.GetStats,
		)

		candidates.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "candidate", "read"),
			handler.GetById,
		)

		candidates.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "create"),
			handler.Create,
		)

		candidates.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "update"),
			handler.Update,
		)

		candidates.POST("/:id/schedule-interview",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "transition"),
			handler.ScheduleInterview,
		)

		candidates.POST("/:id/make-offer",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "transition"),
			handler.MakeOffer,
		)

		candidates.POST("/:id/hire",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "transition"),
			handler.Hire,
		)

		candidates.POST("/:id/reject",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "candidate", "transition"),
			handler.Reject,
		)

		candidates.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "candidate", "delete"),
			handler.Delete,
		)
	}
}
