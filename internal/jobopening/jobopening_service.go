package jobopening

import (
	"context"
	"database/sql"
	"time"

	jobopeningerrors "hr-admin/internal/jobopening/errors"
	"hr-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=jobopening_service.go -destination=mock/jobopening_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobOpeningRequest) (JobOpeningResponse, error)
	GetAll(ctx context.Context, status string) ([]JobOpeningResponse, error)
	GetByID(ctx context.Context, id string) (JobOpeningDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateJobOpeningRequest) (JobOpeningResponse, error)
	ClosePosition(ctx context.Context, id string) (JobOpeningResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("jobopening.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobopening.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateJobOpeningRequest) (JobOpeningResponse, error) {
	s.logger.Debug("create job opening requested",
		zap.String("job_title", req.JobTitle),
		zap.String("department", req.Department),
	)

	if err := validateSalaryRange(req.SalaryRangeMin, req.SalaryRangeMax); err != nil {
		return JobOpeningResponse{}, err
	}

	opening := &JobOpening{
		ID:                uuid.New(),
		JobTitle:          req.JobTitle,
		Department:        req.Department,
		Description:       req.Description,
		Requirements:      req.Requirements,
		Location:          req.Location,
		NumberOfPositions: req.NumberOfPositions,
		PostedDate:        time.Now().UTC(),
		Status:            StatusOpen,
		SalaryRangeMin:    req.SalaryRangeMin,
		SalaryRangeMax:    req.SalaryRangeMax,
		CreatedBy:         contextutil.GetActorID(ctx),
		UpdatedBy:         contextutil.GetActorID(ctx),
		Version:           1,
	}

	if err := s.repo.Create(ctx, opening); err != nil {
		s.logger.Error("create job opening persist failed", zap.Error(err))
		return JobOpeningResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create job opening success", zap.String("job_opening_id", opening.ID.String()))

	return mapToResponse(*opening), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]JobOpeningResponse, error) {
	openings, err := s.repo.FindAll(ctx, status)
	if err != nil {
		s.logger.Error("get all job openings failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(openings), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobOpeningDetailResponse, error) {
	opening, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobOpeningDetailResponse{}, mapRepositoryError(err)
	}

	counts, err := s.repo.GetCandidateCounts(ctx, id)
	if err != nil {
		s.logger.Error("get job opening candidate counts failed",
			zap.String("job_opening_id", id),
			zap.Error(err),
		)
		return JobOpeningDetailResponse{}, mapRepositoryError(err)
	}

	return JobOpeningDetailResponse{
		JobOpening:            mapToResponse(*opening),
		TotalCandidates:       counts.Total,
		PendingCandidates:     counts.Pending,
		InterviewedCandidates: counts.Interviewed,
		HiredCandidates:       counts.Hired,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobOpeningRequest) (JobOpeningResponse, error) {
	s.logger.Debug("update job opening requested", zap.String("job_opening_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update job opening begin tx failed", zap.Error(err))
		return JobOpeningResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if !IsValidStatus(req.Status) {
		return JobOpeningResponse{}, jobopeningerrors.ErrInvalidStatus
	}
	if err := validateSalaryRange(req.SalaryRangeMin, req.SalaryRangeMax); err != nil {
		return JobOpeningResponse{}, err
	}

	opening, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobOpeningResponse{}, mapRepositoryError(err)
	}

	opening.JobTitle = req.JobTitle
	opening.Department = req.Department
	opening.Description = req.Description
	opening.Requirements = req.Requirements
	opening.Location = req.Location
	opening.NumberOfPositions = req.NumberOfPositions
	opening.Status = req.Status
	opening.SalaryRangeMin = req.SalaryRangeMin
	opening.SalaryRangeMax = req.SalaryRangeMax
	opening.UpdatedBy = contextutil.GetActorID(ctx)
	opening.Version = req.Version

	if err := qtx.Update(ctx, opening); err != nil {
		s.logger.Warn("update job opening persist failed", zap.String("job_opening_id", id), zap.Error(err))
		return JobOpeningResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update job opening commit failed", zap.Error(err))
		return JobOpeningResponse{}, err
	}

	s.logger.Info("update job opening success", zap.String("job_opening_id", id))

	return mapToResponse(*opening), nil
}

// ClosePosition is unconditional and irreversible through this surface.
func (s *service) ClosePosition(ctx context.Context, id string) (JobOpeningResponse, error) {
	s.logger.Debug("close job opening requested", zap.String("job_opening_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("close job opening begin tx failed", zap.Error(err))
		return JobOpeningResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	opening, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobOpeningResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	opening.Status = StatusClosed
	opening.ClosingDate = &now
	opening.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, opening); err != nil {
		s.logger.Warn("close job opening persist failed", zap.String("job_opening_id", id), zap.Error(err))
		return JobOpeningResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("close job opening commit failed", zap.Error(err))
		return JobOpeningResponse{}, err
	}

	s.logger.Info("close job opening success", zap.String("job_opening_id", id))

	return mapToResponse(*opening), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete job opening requested", zap.String("job_opening_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete job opening failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete job opening success", zap.String("job_opening_id", id))
	return nil
}

func validateSalaryRange(min, max *int64) error {
	if min != nil && max != nil && *min > *max {
		return jobopeningerrors.ErrInvalidSalaryRange
	}
	return nil
}

func mapToResponse(opening JobOpening) JobOpeningResponse {
	resp := JobOpeningResponse{
		ID:                opening.ID.String(),
		JobTitle:          opening.JobTitle,
		Department:        opening.Department,
		Description:       opening.Description,
		Requirements:      opening.Requirements,
		Location:          opening.Location,
		NumberOfPositions: opening.NumberOfPositions,
		PostedDate:        opening.PostedDate.Format("2006-01-02"),
		Status:            opening.Status,
		SalaryRangeMin:    opening.SalaryRangeMin,
		SalaryRangeMax:    opening.SalaryRangeMax,
		Version:           opening.Version,
	}
	if opening.ClosingDate != nil {
		resp.ClosingDate = opening.ClosingDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(openings []JobOpening) []JobOpeningResponse {
	res := make([]JobOpeningResponse, len(openings))
	for i, o := range openings {
		res[i] = mapToResponse(o)
	}
	return res
}
