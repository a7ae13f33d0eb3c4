package app

import (
	"database/sql"
	"path/filepath"

	"hr-admin/internal/auth"
	"hr-admin/internal/benefit"
	"hr-admin/internal/candidate"
	"hr-admin/internal/dashboard"
	"hr-admin/internal/employee"
	"hr-admin/internal/equipment"
	"hr-admin/internal/jobopening"
	"hr-admin/internal/messaging/kafka"
	"hr-admin/internal/middleware"
	"hr-admin/internal/rbac"
	"hr-admin/internal/rbac/infra"
	"hr-admin/internal/salary"
	"hr-admin/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	benefitRepo := benefit.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	equipmentRepo := equipment.NewRepository(gormDB)
	jobOpeningRepo := jobopening.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	salaryRepo := salary.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	benefitService := benefit.NewService(db, benefitRepo)
	candidateService := candidate.NewService(db, candidateRepo, employeeRepo, counterRepo, outboxRepo)
	dashboardService := dashboard.NewService(dashboardRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	equipmentService := equipment.NewService(db, equipmentRepo)
	jobOpeningService := jobopening.NewService(db, jobOpeningRepo)
	salaryService := salary.NewService(db, salaryRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	benefitHandler := benefit.NewHandler(benefitService)
	candidateHandler := candidate.NewHandler(candidateService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	equipmentHandler := equipment.NewHandler(equipmentService)
	jobOpeningHandler := jobopening.NewHandler(jobOpeningService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		benefit.RegisterRoutes(api, benefitHandler, rbacService, logger)
		candidate.RegisterRoutes(api, candidateHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		equipment.RegisterRoutes(api, equipmentHandler, rbacService, logger)
		jobopening.RegisterRoutes(api, jobOpeningHandler, rbacService, logger)
		salary.RegisterRoutes(api, salaryHandler, rbacService, logger)
	}

	return nil
}
