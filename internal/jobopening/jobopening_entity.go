package jobopening

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
	StatusOnHold = "ON_HOLD"
)

type JobOpening struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status string    `gorm:"type:varchar(20);not null;default:'OPEN';index:idx_job_openings_status"`

	JobTitle     string `gorm:"type:varchar(150);not null"`
	Department   string `gorm:"type:varchar(100);not null"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:text;not null"`
	Location     string `gorm:"type:varchar(150)"`

	NumberOfPositions int        `gorm:"type:int;not null;default:1"`
	PostedDate        time.Time  `gorm:"type:date;not null"`
	ClosingDate       *time.Time `gorm:"type:date"`

	// Salary bounds in cents.
	SalaryRangeMin *int64 `gorm:"type:bigint"`
	SalaryRangeMax *int64 `gorm:"type:bigint"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusClosed, StatusOnHold:
		return true
	}
	return false
}
