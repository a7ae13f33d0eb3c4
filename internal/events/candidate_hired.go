package events

import "time"

const CandidateHiredTopic = "hr.recruitment.lifecycle.v1"

type CandidateHiredEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	CandidateID string    `json:"candidate_id"`
	EmployeeID  string    `json:"employee_id"`
	JobTitle    string    `json:"job_title"`
	Department  string    `json:"department"`
	OccurredAt  time.Time `json:"occurred_at"`
}
