package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

// ErrRowChanged reports an optimistic-lock miss: the row's version moved
// between read and write. Surfaced to callers as a conflict, never retried here.
var ErrRowChanged = errors.New("employee row version changed")

type ListFilter struct {
	Status     string
	Department string
	Search     string
}

// ProfileStats backs the employee profile view with counts gathered from
// the related tables.
type ProfileStats struct {
	ActiveBenefits    int64
	AssignedEquipment int64
	HasSalary         bool
}

type SalaryHistoryEntry struct {
	OldSalary     int64
	NewSalary     int64
	EffectiveDate time.Time
	Reason        string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindManagerOptions(ctx context.Context, excludeID string) ([]Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
	GetProfileStats(ctx context.Context, id string) (ProfileStats, error)
	ListSalaryHistory(ctx context.Context, id string) ([]SalaryHistoryEntry, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		db = db.Where("department = ?", filter.Department)
	}
	if filter.Search != "" {
		q := "%" + filter.Search + "%"
		db = db.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email_address ILIKE ? OR emp_no ILIKE ?",
			q, q, q, q,
		)
	}

	var empls []Employee
	err := db.Order("created_at DESC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "emp_no", "first_name", "middle_name", "last_name", "department", "designation").
		Where("status = ?", StatusActive).
		Order("first_name ASC, last_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindManagerOptions(ctx context.Context, excludeID string) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Select("id", "emp_no", "first_name", "middle_name", "last_name").
		Where("status = ?", StatusActive)

	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var empls []Employee
	err := db.Order("first_name ASC, last_name ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) ListDepartments(ctx context.Context) ([]string, error) {
	var departments []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct("department").
		Where("department <> ''").
		Order("department ASC").
		Pluck("department", &departments).Error
	return departments, err
}

func (r *repository) GetProfileStats(ctx context.Context, id string) (ProfileStats, error) {
	var stats ProfileStats

	err := r.db.WithContext(ctx).
		Table("benefits").
		Where("employee_id = ?", id).
		Where("is_active = true").
		Count(&stats.ActiveBenefits).Error
	if err != nil {
		return ProfileStats{}, err
	}

	err = r.db.WithContext(ctx).
		Table("equipment").
		Where("assigned_to_employee_id = ?", id).
		Where("status = ?", "ASSIGNED").
		Count(&stats.AssignedEquipment).Error
	if err != nil {
		return ProfileStats{}, err
	}

	var salaryCount int64
	err = r.db.WithContext(ctx).
		Table("salaries").
		Where("employee_id = ?", id).
		Count(&salaryCount).Error
	if err != nil {
		return ProfileStats{}, err
	}
	stats.HasSalary = salaryCount > 0

	return stats, nil
}

func (r *repository) ListSalaryHistory(ctx context.Context, id string) ([]SalaryHistoryEntry, error) {
	var entries []SalaryHistoryEntry
	err := r.db.WithContext(ctx).
		Table("salary_histories").
		Select("old_salary", "new_salary", "effective_date", "reason").
		Where("employee_id = ?", id).
		Order("effective_date DESC").
		Scan(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	currentVersion := empl.Version
	empl.Version = currentVersion + 1

	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND version = ?", empl.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by", "Manager").
		Updates(empl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
