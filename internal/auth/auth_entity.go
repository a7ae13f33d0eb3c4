package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(120);not null"`
	Email    string    `gorm:"type:varchar(200);uniqueIndex:uq_user_email;not null"`
	Password string    `gorm:"type:varchar(120);not null"`
	Role     string    `gorm:"type:varchar(30);not null;default:'hr_viewer'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
