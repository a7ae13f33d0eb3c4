package app

import (
	"os"

	"hr-admin/internal/auth"
	"hr-admin/internal/benefit"
	"hr-admin/internal/candidate"
	"hr-admin/internal/employee"
	"hr-admin/internal/equipment"
	"hr-admin/internal/jobopening"
	"hr-admin/internal/salary"
	"hr-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&jobopening.JobOpening{},
		&candidate.Candidate{},
		&salary.Salary{},
		&salary.SalaryHistory{},
		&benefit.Benefit{},
		&equipment.Equipment{},
	); err != nil {
		return err
	}

	// Counter and outbox tables are written with raw SQL, their shape is
	// pinned here rather than through entity structs.
	if err := gormDB.Exec(`
		CREATE TABLE IF NOT EXISTS hr_counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`).Error; err != nil {
		return err
	}

	return gormDB.Exec(`
		CREATE TABLE IF NOT EXISTS hr_outbox_events (
			id UUID PRIMARY KEY,
			request_id VARCHAR(100),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id VARCHAR(100) NOT NULL,
			event_type VARCHAR(100) NOT NULL,
			topic VARCHAR(200) NOT NULL,
			payload JSONB NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			next_retry_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			processed_at TIMESTAMPTZ,
			error_message VARCHAR(500),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`).Error
}
