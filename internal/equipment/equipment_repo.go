package equipment

import (
	"context"
	"database/sql"
	"errors"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

// ErrRowChanged reports an optimistic-lock miss on an equipment row.
var ErrRowChanged = errors.New("equipment row version changed")

type ListFilter struct {
	Status     string
	Type       string
	EmployeeID string
	Search     string
}

// AuditRow is the full-snapshot slice the audit report aggregates over,
// with the assignee's name joined in from the employees table.
type AuditRow struct {
	EquipmentType string
	Status        string
	PurchasePrice *int64
	AssigneeID    string
	AssigneeName  string
}

//go:generate mockgen -source=equipment_repo.go -destination=mock/equipment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, eq *Equipment) error
	FindAll(ctx context.Context, filter ListFilter) ([]Equipment, error)
	FindByID(ctx context.Context, id string) (*Equipment, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	ListForAudit(ctx context.Context) ([]AuditRow, error)
	Update(ctx context.Context, eq *Equipment) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto tx so a multi-write flow commits or
// rolls back as one unit.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, eq *Equipment) error {
	return r.db.WithContext(ctx).Create(eq).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Equipment, error) {
	db := r.db.WithContext(ctx).Model(&Equipment{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		db = db.Where("equipment_type = ?", filter.Type)
	}
	if filter.EmployeeID != "" {
		db = db.Where("assigned_to_employee_id = ?", filter.EmployeeID)
	}
	if filter.Search != "" {
		q := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR serial_number ILIKE ?", q, q)
	}

	var items []Equipment
	if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Equipment, error) {
	var eq Equipment
	if err := r.db.WithContext(ctx).First(&eq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListForAudit(ctx context.Context) ([]AuditRow, error) {
	var rows []AuditRow
	err := r.db.WithContext(ctx).
		Table("equipment").
		Select(`equipment.equipment_type,
			equipment.status,
			equipment.purchase_price,
			COALESCE(equipment.assigned_to_employee_id::text, '') AS assignee_id,
			COALESCE(TRIM(CONCAT_WS(' ', e.first_name, e.middle_name, e.last_name)), '') AS assignee_name`).
		Joins("LEFT JOIN employees e ON e.id = equipment.assigned_to_employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, eq *Equipment) error {
	currentVersion := eq.Version
	eq.Version++

	res := r.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("id = ? AND version = ?", eq.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(eq)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Equipment{}, "id = ?", id).Error
}
