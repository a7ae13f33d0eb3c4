package dashboard

type RecentHireResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	EmpNo      string `json:"emp_no"`
	Department string `json:"department,omitempty"`
	HireDate   string `json:"hire_date,omitempty"`
}

type RecentCandidateResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Status      string `json:"status"`
	JobTitle    string `json:"job_title,omitempty"`
	AppliedDate string `json:"applied_date"`
}

type DashboardResponse struct {
	ActiveEmployees   int64                     `json:"active_employees"`
	OpenPositions     int64                     `json:"open_positions"`
	PendingCandidates int64                     `json:"pending_candidates"`
	TotalEquipment    int64                     `json:"total_equipment"`
	AssignedEquipment int64                     `json:"assigned_equipment"`
	MonthlyPayroll    int64                     `json:"monthly_payroll"`
	RecentHires       []RecentHireResponse      `json:"recent_hires"`
	RecentCandidates  []RecentCandidateResponse `json:"recent_candidates"`
}
