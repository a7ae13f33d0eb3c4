package jobopening

type CreateJobOpeningRequest struct {
	JobTitle          string `json:"job_title" binding:"required,max=150"`
	Department        string `json:"department" binding:"required,max=100"`
	Description       string `json:"description" binding:"max=2000"`
	Requirements      string `json:"requirements" binding:"required,max=2000"`
	Location          string `json:"location" binding:"max=150"`
	NumberOfPositions int    `json:"number_of_positions" binding:"required,min=1,max=1000"`
	SalaryRangeMin    *int64 `json:"salary_range_min" binding:"omitempty,min=0"`
	SalaryRangeMax    *int64 `json:"salary_range_max" binding:"omitempty,min=0"`
}

type UpdateJobOpeningRequest struct {
	JobTitle          string `json:"job_title" binding:"required,max=150"`
	Department        string `json:"department" binding:"required,max=100"`
	Description       string `json:"description" binding:"max=2000"`
	Requirements      string `json:"requirements" binding:"required,max=2000"`
	Location          string `json:"location" binding:"max=150"`
	NumberOfPositions int    `json:"number_of_positions" binding:"required,min=1,max=1000"`
	Status            string `json:"status" binding:"required"`
	SalaryRangeMin    *int64 `json:"salary_range_min" binding:"omitempty,min=0"`
	SalaryRangeMax    *int64 `json:"salary_range_max" binding:"omitempty,min=0"`
	Version           int    `json:"version" binding:"required,min=1"`
}

type JobOpeningResponse struct {
	ID                string `json:"id"`
	JobTitle          string `json:"job_title"`
	Department        string `json:"department"`
	Description       string `json:"description,omitempty"`
	Requirements      string `json:"requirements"`
	Location          string `json:"location,omitempty"`
	NumberOfPositions int    `json:"number_of_positions"`
	PostedDate        string `json:"posted_date"`
	ClosingDate       string `json:"closing_date,omitempty"`
	Status            string `json:"status"`
	SalaryRangeMin    *int64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax    *int64 `json:"salary_range_max,omitempty"`
	Version           int    `json:"version"`
}

type JobOpeningDetailResponse struct {
	JobOpening            JobOpeningResponse `json:"job_opening"`
	TotalCandidates       int64              `json:"total_candidates"`
	PendingCandidates     int64              `json:"pending_candidates"`
	InterviewedCandidates int64              `json:"interviewed_candidates"`
	HiredCandidates       int64              `json:"hired_candidates"`
}
