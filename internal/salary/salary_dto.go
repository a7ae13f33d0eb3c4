package salary

type CreateSalaryRequest struct {
	EmployeeID         string `json:"employee_id" binding:"required,uuid"`
	BasicSalary        int64  `json:"basic_salary" binding:"required,min=0"`
	HousingAllowance   *int64 `json:"housing_allowance" binding:"omitempty,min=0"`
	TransportAllowance *int64 `json:"transport_allowance" binding:"omitempty,min=0"`
	MedicalAllowance   *int64 `json:"medical_allowance" binding:"omitempty,min=0"`
	OtherAllowance     *int64 `json:"other_allowance" binding:"omitempty,min=0"`
	EffectiveDate      string `json:"effective_date" binding:"required"`
}

type UpdateSalaryRequest struct {
	BasicSalary        int64  `json:"basic_salary" binding:"required,min=0"`
	HousingAllowance   *int64 `json:"housing_allowance" binding:"omitempty,min=0"`
	TransportAllowance *int64 `json:"transport_allowance" binding:"omitempty,min=0"`
	MedicalAllowance   *int64 `json:"medical_allowance" binding:"omitempty,min=0"`
	OtherAllowance     *int64 `json:"other_allowance" binding:"omitempty,min=0"`
	EffectiveDate      string `json:"effective_date" binding:"required"`
	Version            int    `json:"version" binding:"required,min=1"`
}

type RejectSalaryRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type BulkUpdateRequest struct {
	EmployeeIDs   []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	Percentage    float64  `json:"percentage" binding:"omitempty,min=-100,max=1000"`
	FlatAmount    int64    `json:"flat_amount"`
	EffectiveDate string   `json:"effective_date" binding:"required"`
}

type BulkUpdateResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type SalaryResponse struct {
	ID                 string `json:"id"`
	EmployeeID         string `json:"employee_id"`
	BasicSalary        int64  `json:"basic_salary"`
	HousingAllowance   *int64 `json:"housing_allowance,omitempty"`
	TransportAllowance *int64 `json:"transport_allowance,omitempty"`
	MedicalAllowance   *int64 `json:"medical_allowance,omitempty"`
	OtherAllowance     *int64 `json:"other_allowance,omitempty"`
	TotalSalary        int64  `json:"total_salary"`
	Status             string `json:"status"`
	EffectiveDate      string `json:"effective_date"`
	ApprovedBy         string `json:"approved_by,omitempty"`
	ApprovedAt         string `json:"approved_at,omitempty"`
	RejectionReason    string `json:"rejection_reason,omitempty"`
	Version            int    `json:"version"`
}

type SalaryHistoryResponse struct {
	ID            string `json:"id"`
	SalaryID      string `json:"salary_id"`
	EmployeeID    string `json:"employee_id"`
	OldSalary     int64  `json:"old_salary"`
	NewSalary     int64  `json:"new_salary"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"created_at"`
}

type DepartmentCompensation struct {
	Department  string `json:"department"`
	Headcount   int64  `json:"headcount"`
	TotalSalary int64  `json:"total_salary"`
	AvgSalary   int64  `json:"avg_salary"`
}

type StatusCompensation struct {
	Status      string `json:"status"`
	Count       int64  `json:"count"`
	TotalSalary int64  `json:"total_salary"`
}

type CompensationReportResponse struct {
	TotalRecords int64                    `json:"total_records"`
	TotalSalary  int64                    `json:"total_salary"`
	AvgSalary    int64                    `json:"avg_salary"`
	ByDepartment []DepartmentCompensation `json:"by_department"`
	ByStatus     []StatusCompensation     `json:"by_status"`
}
