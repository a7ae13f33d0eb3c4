package candidate

type CreateCandidateRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email,max=200"`
	Phone        string `json:"phone" binding:"max=30"`
	JobOpeningID string `json:"job_opening_id" binding:"required,uuid"`
	ResumeURL    string `json:"resume_url" binding:"omitempty,url,max=500"`
	CoverLetter  string `json:"cover_letter" binding:"max=4000"`
	Notes        string `json:"notes" binding:"max=4000"`
}

type UpdateCandidateRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Phone       string `json:"phone" binding:"max=30"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url,max=500"`
	CoverLetter string `json:"cover_letter" binding:"max=4000"`
	Notes       string `json:"notes" binding:"max=4000"`
	Status      string `json:"status" binding:"required"`
	Version     int    `json:"version" binding:"required,min=1"`
}

type ScheduleInterviewRequest struct {
	InterviewDate string `json:"interview_date" binding:"required"`
}

type RejectCandidateRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type CandidateResponse struct {
	ID              string `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Status          string `json:"status"`
	JobOpeningID    string `json:"job_opening_id,omitempty"`
	ResumeURL       string `json:"resume_url,omitempty"`
	CoverLetter     string `json:"cover_letter,omitempty"`
	Notes           string `json:"notes,omitempty"`
	AppliedDate     string `json:"applied_date"`
	InterviewDate   string `json:"interview_date,omitempty"`
	HiredEmployeeID string `json:"hired_employee_id,omitempty"`
	Version         int    `json:"version"`
}

type HireCandidateResponse struct {
	Candidate  CandidateResponse `json:"candidate"`
	EmployeeID string            `json:"employee_id"`
	EmpNo      string            `json:"emp_no"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type OpeningStatsResponse struct {
	JobTitle string  `json:"job_title"`
	Total    int64   `json:"total"`
	Hired    int64   `json:"hired"`
	HireRate float64 `json:"hire_rate"`
}

type RecruitmentStatsResponse struct {
	TotalCandidates int64                  `json:"total_candidates"`
	HiredCandidates int64                  `json:"hired_candidates"`
	HireRate        float64                `json:"hire_rate"`
	ByStatus        []StatusCountResponse  `json:"by_status"`
	ByJobOpening    []OpeningStatsResponse `json:"by_job_opening"`
}
