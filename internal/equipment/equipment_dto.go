package equipment

type CreateEquipmentRequest struct {
	Name                 string `json:"name" binding:"required,max=150"`
	EquipmentType        string `json:"equipment_type" binding:"required,max=100"`
	SerialNumber         string `json:"serial_number" binding:"max=100"`
	PurchasePrice        *int64 `json:"purchase_price" binding:"omitempty,min=0"`
	PurchaseDate         string `json:"purchase_date"`
	AssignedToEmployeeID string `json:"assigned_to_employee_id" binding:"omitempty,uuid"`
	Notes                string `json:"notes" binding:"max=4000"`
}

type UpdateEquipmentRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	EquipmentType string `json:"equipment_type" binding:"required,max=100"`
	SerialNumber  string `json:"serial_number" binding:"max=100"`
	PurchasePrice *int64 `json:"purchase_price" binding:"omitempty,min=0"`
	PurchaseDate  string `json:"purchase_date"`
	Notes         string `json:"notes" binding:"max=4000"`
	Version       int    `json:"version" binding:"required,min=1"`
}

type AssignEquipmentRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type EquipmentResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	EquipmentType        string `json:"equipment_type"`
	SerialNumber         string `json:"serial_number,omitempty"`
	PurchasePrice        *int64 `json:"purchase_price,omitempty"`
	PurchaseDate         string `json:"purchase_date,omitempty"`
	Status               string `json:"status"`
	AssignedToEmployeeID string `json:"assigned_to_employee_id,omitempty"`
	AssignmentDate       string `json:"assignment_date,omitempty"`
	ReturnDate           string `json:"return_date,omitempty"`
	Notes                string `json:"notes,omitempty"`
	Version              int    `json:"version"`
}

type StatusAuditEntry struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TypeAuditEntry struct {
	EquipmentType      string `json:"equipment_type"`
	Count              int64  `json:"count"`
	TotalPurchasePrice int64  `json:"total_purchase_price"`
}

type AssigneeAuditEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Count        int64  `json:"count"`
}

type AuditReportResponse struct {
	TotalItems    int64                `json:"total_items"`
	TotalValue    int64                `json:"total_value"`
	ByStatus      []StatusAuditEntry   `json:"by_status"`
	ByType        []TypeAuditEntry     `json:"by_type"`
	ByAssignee    []AssigneeAuditEntry `json:"by_assignee"`
}
