package jobopening

import (
	"context"
	"database/sql"
	"errors"

	"hr-admin/internal/shared/connection"

	"gorm.io/gorm"
)

var ErrRowChanged = errors.New("job opening row version changed")

// CandidateCounts summarizes the pipeline attached to one opening.
type CandidateCounts struct {
	Total       int64
	Pending     int64
	Interviewed int64
	Hired       int64
}

//go:generate mockgen -source=jobopening_repo.go -destination=mock/jobopening_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, opening *JobOpening) error
	FindAll(ctx context.Context, status string) ([]JobOpening, error)
	FindByID(ctx context.Context, id string) (*JobOpening, error)
	GetCandidateCounts(ctx context.Context, id string) (CandidateCounts, error)
	Update(ctx context.Context, opening *JobOpening) error
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

func (r *repository) Create(ctx context.Context, opening *JobOpening) error {
	return r.db.WithContext(ctx).Create(opening).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]JobOpening, error) {
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var openings []JobOpening
	err := db.Order("posted_date DESC").Find(&openings).Error
	return openings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobOpening, error) {
	var opening JobOpening
	err := r.db.WithContext(ctx).First(&opening, "id = ?", id).Error
	return &opening, err
}

func (r *repository) GetCandidateCounts(ctx context.Context, id string) (CandidateCounts, error) {
	var counts CandidateCounts

	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("candidates").
		Select("status, COUNT(*) AS n").
		Where("job_opening_id = ?", id).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return CandidateCounts{}, err
	}

	for _, rw := range rows {
		counts.Total += rw.N
		switch rw.Status {
		case "APPLIED", "UNDER_REVIEW":
			counts.Pending += rw.N
		case "INTERVIEWED":
			counts.Interviewed += rw.N
		case "HIRED":
			counts.Hired += rw.N
		}
	}

	return counts, nil
}

func (r *repository) Update(ctx context.Context, opening *JobOpening) error {
	currentVersion := opening.Version
	opening.Version = currentVersion + 1

	res := r.db.WithContext(ctx).
		Model(&JobOpening{}).
		Where("id = ? AND version = ?", opening.ID, currentVersion).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(opening)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRowChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&JobOpening{}, "id = ?", id).Error
}
