package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "dashboard", "read"),
			handler.GetOverview,
		)
	}
}
