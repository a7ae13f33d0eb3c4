package salary

import (
	"context"
	"database/sql"
	"errors"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

// ErrRowChanged reports an optimistic-lock miss on a salary row.
var ErrRowChanged = errors.New("salary row version changed")

type ListFilter struct {
	Status     string
	EmployeeID string
}

// EmployeeSnapshot is the slice of an employee the compensation side
// needs, read with a plain table query to avoid a package cycle.
type EmployeeSnapshot struct {
	ID         string
	FullName   string
	Department string
}

// ReportRow joins a salary with its employee's department for the
// compensation report. Amounts stay componentized so totals are
// recomputed by the caller.
type ReportRow struct {
	EmployeeID         string
	Department         string
	Status             string
	BasicSalary        int64
	HousingAllowance   *int64
	TransportAllowance *int64
	MedicalAllowance   *int64
	OtherAllowance     *int64
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sal *Salary) error
	FindAll(ctx context.Context, filter ListFilter) ([]Salary, error)
	FindByID(ctx context.Context, id string) (*Salary, error)
	FindLatestByEmployee(ctx context.Context, employeeID string) (*Salary, error)
	GetEmployeeSnapshot(ctx context.Context, employeeID string) (*EmployeeSnapshot, error)
	CreateHistory(ctx context.Context, hist *SalaryHistory) error
	FindHistoryByID(ctx context.Context, id string) (*SalaryHistory, error)
	ListHistory(ctx context.Context, employeeID string) ([]SalaryHistory, error)
	ListForReport(ctx context.Context) ([]ReportRow, error)
	Update(ctx context.Context, sal *Salary) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto tx so the salary row and its history
// entry commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, sal *Salary) error {
	return r.db.WithContext(ctx).Create(sal).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Salary, error) {
	db := r.db.WithContext(ctx).Model(&Salary{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}

	var salaries []Salary
	if err := db.Order("effective_date DESC").Find(&salaries).Error; err != nil {
		return nil, err
	}
	return salaries, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Salary, error) {
	var sal Salary
	if err := r.db.WithContext(ctx).First(&sal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sal, nil
}

func (r *repository) FindLatestByEmployee(ctx context.Context, employeeID string) (*Salary, error) {
	var sal Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		First(&sal).Error
	if err != nil {
		return nil, err
	}
	return &sal, nil
}

func (r *repository) GetEmployeeSnapshot(ctx context.Context, employeeID string) (*EmployeeSnapshot, error) {
	var snap EmployeeSnapshot
	err := r.db.WithContext(ctx).
		Table("employees").
		Select(`id,
			TRIM(CONCAT_WS(' ', first_name, middle_name, last_name)) AS full_name,
			department`).
		Where("id = ?", employeeID).
		Take(&snap).Error
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) CreateHistory(ctx context.Context, hist *SalaryHistory) error {
	return r.db.WithContext(ctx).Create(hist).Error
}

func (r *repository) FindHistoryByID(ctx context.Context, id string) (*SalaryHistory, error) {
	var entry SalaryHistory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) ListHistory(ctx context.Context, employeeID string) ([]SalaryHistory, error) {
	db := r.db.WithContext(ctx).Model(&SalaryHistory{})
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	var entries []SalaryHistory
	if err := db.Order("effective_date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) ListForReport(ctx context.Context) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.WithContext(ctx).
		Table("salaries").
		Select(`salaries.employee_id,
			COALESCE(e.department, '') AS department,
			salaries.status,
			salaries.basic_salary,
			salaries.housing_allowance,
			salaries.transport_allowance,
			salaries.medical_allowance,
			salaries.other_allowance`).
		Joins("LEFT JOIN employees e ON e.id = salaries.employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, sal *Salary) error {
	currentVersion := sal.Version
	sal.Version++

	res := r.db.WithContext(ctx).
		Model(&Salary{}).
		Where("id = ? AND version = ?", sal.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(sal)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Salary{}, "id = ?", id).Error
}
