package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// All amounts are integer cents.
type Salary struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_salaries_employee"`

	BasicSalary        int64  `gorm:"type:bigint;not null"`
	HousingAllowance   *int64 `gorm:"type:bigint"`
	TransportAllowance *int64 `gorm:"type:bigint"`
	MedicalAllowance   *int64 `gorm:"type:bigint"`
	OtherAllowance     *int64 `gorm:"type:bigint"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_salaries_status"`
	EffectiveDate   time.Time  `gorm:"type:date;not null;index:idx_salaries_effective"`
	ApprovedBy      string     `gorm:"type:varchar(120)"`
	ApprovedAt      *time.Time
	RejectionReason string     `gorm:"type:varchar(1000)"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total is always recomputed from the components, never stored.
func (s *Salary) Total() int64 {
	total := s.BasicSalary
	for _, a := range []*int64{s.HousingAllowance, s.TransportAllowance, s.MedicalAllowance, s.OtherAllowance} {
		if a != nil {
			total += *a
		}
	}
	return total
}

// SalaryHistory rows are append-only; nothing in this package updates or
// deletes them after creation.
type SalaryHistory struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalaryID      uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_histories_salary"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_histories_employee"`
	OldSalary     int64     `gorm:"type:bigint;not null"`
	NewSalary     int64     `gorm:"type:bigint;not null"`
	EffectiveDate time.Time `gorm:"type:date;not null"`
	Reason        string    `gorm:"type:varchar(200);not null"`
	CreatedBy     string    `gorm:"type:varchar(120)"`
	CreatedAt     time.Time
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
