package benefit

import (
	"context"
	"database/sql"
	"errors"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

// ErrRowChanged reports an optimistic-lock miss on a benefit row.
var ErrRowChanged = errors.New("benefit row version changed")

type ListFilter struct {
	EmployeeID string
	ActiveOnly bool
}

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ben *Benefit) error
	FindAll(ctx context.Context, filter ListFilter) ([]Benefit, error)
	FindByID(ctx context.Context, id string) (*Benefit, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Update(ctx context.Context, ben *Benefit) error
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

func (r *repository) Create(ctx context.Context, ben *Benefit) error {
	return r.db.WithContext(ctx).Create(ben).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Benefit, error) {
	db := r.db.WithContext(ctx).Model(&Benefit{})

	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ActiveOnly {
		db = db.Where("is_active = true")
	}

	var benefits []Benefit
	if err := db.Order("start_date DESC").Find(&benefits).Error; err != nil {
		return nil, err
	}
	return benefits, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Benefit, error) {
	var ben Benefit
	if err := r.db.WithContext(ctx).First(&ben, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ben, nil
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

func (r *repository) Update(ctx context.Context, ben *Benefit) error {
	currentVersion := ben.Version
	ben.Version++

	res := r.db.WithContext(ctx).
		Model(&Benefit{}).
		Where("id = ? AND version = ?", ben.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(ben)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Benefit{}, "id = ?", id).Error
}
