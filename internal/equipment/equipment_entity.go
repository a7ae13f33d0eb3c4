package equipment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAvailable        = "AVAILABLE"
	StatusAssigned         = "ASSIGNED"
	StatusUnderMaintenance = "UNDER_MAINTENANCE"
	StatusRetired          = "RETIRED"
)

type Equipment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Name          string `gorm:"type:varchar(150);not null"`
	EquipmentType string `gorm:"type:varchar(100);not null;index:idx_equipment_type"`
	SerialNumber  string `gorm:"type:varchar(100);uniqueIndex:uq_equipment_serial"`

	// PurchasePrice is integer cents.
	PurchasePrice *int64     `gorm:"type:bigint"`
	PurchaseDate  *time.Time `gorm:"type:date"`

	Status string `gorm:"type:varchar(30);not null;default:'AVAILABLE';index:idx_equipment_status"`

	// AssignedToEmployeeID is non-nil iff Status is ASSIGNED, by
	// convention rather than a storage constraint.
	AssignedToEmployeeID *uuid.UUID `gorm:"type:uuid;index:idx_equipment_assignee"`
	AssignmentDate       *time.Time `gorm:"type:date"`
	ReturnDate           *time.Time `gorm:"type:date"`

	Notes string `gorm:"type:text"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Equipment) TableName() string {
	return "equipment"
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusAssigned, StatusUnderMaintenance, StatusRetired:
		return true
	}
	return false
}
