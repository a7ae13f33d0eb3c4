package candidate

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusApplied     = "APPLIED"
	StatusUnderReview = "UNDER_REVIEW"
	StatusInterviewed = "INTERVIEWED"
	StatusOffered     = "OFFERED"
	StatusHired       = "HIRED"
	StatusRejected    = "REJECTED"
)

type Candidate struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status string    `gorm:"type:varchar(20);not null;default:'APPLIED';index:idx_candidates_status"`

	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(200);not null"`
	Phone     string `gorm:"type:varchar(30)"`

	JobOpeningID *uuid.UUID `gorm:"type:uuid;index:idx_candidates_job_opening"`

	ResumeURL     string `gorm:"type:varchar(500)"`
	CoverLetter   string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
	AppliedDate   time.Time
	InterviewDate *time.Time

	// Stamped by HireCandidate; remains nil on every other path.
	HiredEmployeeID *uuid.UUID `gorm:"type:uuid"`

	CreatedBy string `gorm:"type:varchar(120)"`
	UpdatedBy string `gorm:"type:varchar(120)"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Candidate) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusApplied, StatusUnderReview, StatusInterviewed, StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}

// CanScheduleInterview reports whether the candidate sits in a status from
// which an interview may be booked.
func (c *Candidate) CanScheduleInterview() bool {
	return c.Status == StatusApplied || c.Status == StatusUnderReview
}
