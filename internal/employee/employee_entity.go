package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpNo  string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_empno;not null"`
	Status string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_employees_status"`

	FirstName  string `gorm:"type:varchar(100);not null"`
	MiddleName string `gorm:"type:varchar(100)"`
	LastName   string `gorm:"type:varchar(100);not null"`

	EmailAddress string  `gorm:"type:varchar(200);uniqueIndex:uq_employee_email;not null"`
	PhoneNumber  int64   `gorm:"type:bigint;not null;default:0"`
	Country      string  `gorm:"type:varchar(100)"`
	Address      string  `gorm:"type:text"`
	DateOfBirth  *time.Time `gorm:"type:date"`

	Department     string  `gorm:"type:varchar(100);index:idx_employees_department"`
	Designation    string  `gorm:"type:varchar(150)"`
	ProfilePicture *string `gorm:"type:varchar(500)"`

	HireDate        *time.Time `gorm:"type:date"`
	TerminationDate *time.Time `gorm:"type:date"`

	// Manager is a lookup over ManagerID, never an owning pointer; cycles
	// are not enforced at this level.
	ManagerID *uuid.UUID `gorm:"type:uuid"`
	Manager   *Employee  `gorm:"foreignKey:ManagerID"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}
