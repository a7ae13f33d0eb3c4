package employee

type CreateEmployeeRequest struct {
	EmpNo       string `json:"emp_no"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	MiddleName  string `json:"middle_name" binding:"max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Status      string `json:"status"`
	HireDate    string `json:"hire_date"`
	ManagerID   string `json:"manager_id"`
}

type UpdateEmployeeRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=100"`
	MiddleName      string `json:"middle_name" binding:"max=100"`
	LastName        string `json:"last_name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Country         string `json:"country"`
	Address         string `json:"address"`
	DateOfBirth     string `json:"date_of_birth"`
	Department      string `json:"department"`
	Designation     string `json:"designation"`
	Status          string `json:"status" binding:"required"`
	HireDate        string `json:"hire_date"`
	TerminationDate string `json:"termination_date"`
	ManagerID       string `json:"manager_id"`
	Version         int    `json:"version" binding:"required,min=1"`
}

type ManagerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	EmpNo           string           `json:"emp_no"`
	FirstName       string           `json:"first_name"`
	MiddleName      string           `json:"middle_name,omitempty"`
	LastName        string           `json:"last_name"`
	FullName        string           `json:"full_name"`
	Email           string           `json:"email"`
	Phone           int64            `json:"phone"`
	Country         string           `json:"country,omitempty"`
	Address         string           `json:"address,omitempty"`
	DateOfBirth     string           `json:"date_of_birth,omitempty"`
	Department      string           `json:"department,omitempty"`
	Designation     string           `json:"designation,omitempty"`
	ProfilePicture  string           `json:"profile_picture,omitempty"`
	Status          string           `json:"status"`
	HireDate        string           `json:"hire_date,omitempty"`
	TerminationDate string           `json:"termination_date,omitempty"`
	Manager         *ManagerResponse `json:"manager,omitempty"`
	Version         int              `json:"version"`
}

type SalaryHistoryEntryResponse struct {
	OldSalary     int64  `json:"old_salary"`
	NewSalary     int64  `json:"new_salary"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason"`
}

type EmployeeProfileResponse struct {
	Employee          EmployeeResponse             `json:"employee"`
	ActiveBenefits    int64                        `json:"active_benefits"`
	AssignedEquipment int64                        `json:"assigned_equipment"`
	HasSalary         bool                         `json:"has_salary"`
	SalaryHistory     []SalaryHistoryEntryResponse `json:"salary_history"`
}
