package benefit

import (
	"time"

	"github.com/google/uuid"
)

type Benefit struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_benefits_employee"`

	BenefitType string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Provider    string `gorm:"type:varchar(150)"`

	// MonthlyCost is integer cents.
	MonthlyCost *int64 `gorm:"type:bigint"`

	IsActive  bool      `gorm:"not null;default:true"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
