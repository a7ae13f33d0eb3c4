package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RecentHire and RecentCandidate are read straight off the underlying
// tables; the dashboard owns no rows of its own.
type RecentHire struct {
	ID         string
	FullName   string
	EmpNo      string
	Department string
	HireDate   *time.Time
}

type RecentCandidate struct {
	ID          string
	FullName    string
	Status      string
	JobTitle    string
	AppliedDate time.Time
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountOpenPositions(ctx context.Context) (int64, error)
	CountPendingCandidates(ctx context.Context) (int64, error)
	CountEquipment(ctx context.Context) (total int64, assigned int64, err error)
	MonthlyPayroll(ctx context.Context) (int64, error)
	ListRecentHires(ctx context.Context, since time.Time, limit int) ([]RecentHire, error)
	ListRecentCandidates(ctx context.Context, limit int) ([]RecentCandidate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("status = ?", "ACTIVE").
		Count(&count).Error
	return count, err
}

func (r *repository) CountOpenPositions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("job_openings").
		Where("status = ?", "OPEN").
		Count(&count).Error
	return count, err
}

func (r *repository) CountPendingCandidates(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("candidates").
		Where("status IN ?", []string{"UNDER_REVIEW", "INTERVIEWED"}).
		Count(&count).Error
	return count, err
}

func (r *repository) CountEquipment(ctx context.Context) (int64, int64, error) {
	var total, assigned int64

	if err := r.db.WithContext(ctx).Table("equipment").Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).
		Table("equipment").
		Where("status = ?", "ASSIGNED").
		Count(&assigned).Error
	if err != nil {
		return 0, 0, err
	}
	return total, assigned, nil
}

func (r *repository) MonthlyPayroll(ctx context.Context) (int64, error) {
	// One current salary per employee, the latest by effective date.
	var sum *int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT SUM(
			basic_salary
			+ COALESCE(housing_allowance, 0)
			+ COALESCE(transport_allowance, 0)
			+ COALESCE(medical_allowance, 0)
			+ COALESCE(other_allowance, 0)
		)
		FROM (
			SELECT DISTINCT ON (employee_id) *
			FROM salaries
			ORDER BY employee_id, effective_date DESC
		) latest
	`).Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *repository) ListRecentHires(ctx context.Context, since time.Time, limit int) ([]RecentHire, error) {
	var hires []RecentHire
	err := r.db.WithContext(ctx).
		Table("employees").
		Select(`id,
			TRIM(CONCAT_WS(' ', first_name, middle_name, last_name)) AS full_name,
			emp_no,
			department,
			hire_date`).
		Where("hire_date >= ?", since).
		Order("hire_date DESC").
		Limit(limit).
		Scan(&hires).Error
	if err != nil {
		return nil, err
	}
	return hires, nil
}

func (r *repository) ListRecentCandidates(ctx context.Context, limit int) ([]RecentCandidate, error) {
	var candidates []RecentCandidate
	err := r.db.WithContext(ctx).
		Table("candidates").
		Select(`candidates.id,
			TRIM(CONCAT_WS(' ', candidates.first_name, candidates.last_name)) AS full_name,
			candidates.status,
			COALESCE(jo.job_title, '') AS job_title,
			candidates.applied_date`).
		Joins("LEFT JOIN job_openings jo ON jo.id = candidates.job_opening_id").
		Order("candidates.applied_date DESC").
		Limit(limit).
		Scan(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
