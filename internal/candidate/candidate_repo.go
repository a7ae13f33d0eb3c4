package candidate

import (
	"context"
	"database/sql"
	"errors"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

// ErrRowChanged reports an optimistic-lock miss on a candidate row.
var ErrRowChanged = errors.New("candidate row version changed")

type ListFilter struct {
	Status       string
	JobOpeningID string
	Search       string
}

// OpeningSnapshot is the slice of a job opening the pipeline guards need.
// Read across modules with a plain table query to avoid a package cycle.
type OpeningSnapshot struct {
	ID         string
	JobTitle   string
	Department string
	Status     string
}

type StatusCount struct {
	Status string
	Count  int64
}

type OpeningPipelineCount struct {
	JobTitle string
	Total    int64
	Hired    int64
}

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cand *Candidate) error
	FindAll(ctx context.Context, filter ListFilter) ([]Candidate, error)
	FindByID(ctx context.Context, id string) (*Candidate, error)
	GetOpeningSnapshot(ctx context.Context, openingID string) (*OpeningSnapshot, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByOpening(ctx context.Context) ([]OpeningPipelineCount, error)
	Update(ctx context.Context, cand *Candidate) error
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

func (r *repository) Create(ctx context.Context, cand *Candidate) error {
	return r.db.WithContext(ctx).Create(cand).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Candidate, error) {
	db := r.db.WithContext(ctx).Model(&Candidate{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.JobOpeningID != "" {
		db = db.Where("job_opening_id = ?", filter.JobOpeningID)
	}
	if filter.Search != "" {
		q := "%" + filter.Search + "%"
		db = db.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			q, q, q,
		)
	}

	var candidates []Candidate
	if err := db.Order("applied_date DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Candidate, error) {
	var cand Candidate
	if err := r.db.WithContext(ctx).First(&cand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cand, nil
}

func (r *repository) GetOpeningSnapshot(ctx context.Context, openingID string) (*OpeningSnapshot, error) {
	var snap OpeningSnapshot
	err := r.db.WithContext(ctx).
		Table("job_openings").
		Select("id, job_title, department, status").
		Where("id = ?", openingID).
		Take(&snap).Error
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) CountByOpening(ctx context.Context) ([]OpeningPipelineCount, error) {
	var counts []OpeningPipelineCount
	err := r.db.WithContext(ctx).
		Table("candidates").
		Select(`COALESCE(jo.job_title, 'Unknown') AS job_title,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE candidates.status = 'HIRED') AS hired`).
		Joins("LEFT JOIN job_openings jo ON jo.id = candidates.job_opening_id").
		Group("jo.job_title").
		Order("total DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) Update(ctx context.Context, cand *Candidate) error {
	currentVersion := cand.Version
	cand.Version++

	res := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ? AND version = ?", cand.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(cand)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Candidate{}, "id = ?", id).Error
}
