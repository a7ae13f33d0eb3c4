package benefit

type CreateBenefitRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	BenefitType string `json:"benefit_type" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
	Provider    string `json:"provider" binding:"max=150"`
	MonthlyCost *int64 `json:"monthly_cost" binding:"omitempty,min=0"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
}

type UpdateBenefitRequest struct {
	BenefitType string `json:"benefit_type" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
	Provider    string `json:"provider" binding:"max=150"`
	MonthlyCost *int64 `json:"monthly_cost" binding:"omitempty,min=0"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Version     int    `json:"version" binding:"required,min=1"`
}

type BenefitResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	BenefitType string `json:"benefit_type"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
	MonthlyCost *int64 `json:"monthly_cost,omitempty"`
	IsActive    bool   `json:"is_active"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Version     int    `json:"version"`
}
