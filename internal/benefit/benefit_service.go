package benefit

import (
	"context"
	"database/sql"
	"time"

	benefiterrors "hr-admin/internal/benefit/errors"
	"hr-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=benefit_service.go -destination=mock/benefit_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]BenefitResponse, error)
	GetByID(ctx context.Context, id string) (BenefitResponse, error)
	Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error)
	Activate(ctx context.Context, id string) (BenefitResponse, error)
	Deactivate(ctx context.Context, id string) (BenefitResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error) {
	s.logger.Debug("create benefit requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("benefit_type", req.BenefitType),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return BenefitResponse{}, benefiterrors.ErrInvalidDateFormat
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return BenefitResponse{}, benefiterrors.ErrInvalidDateFormat
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create benefit employee lookup failed", zap.Error(err))
		return BenefitResponse{}, err
	}
	if !exists {
		return BenefitResponse{}, benefiterrors.ErrEmployeeNotFound
	}

	employeeID, _ := uuid.Parse(req.EmployeeID)
	ben := &Benefit{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		BenefitType: req.BenefitType,
		Description: req.Description,
		Provider:    req.Provider,
		MonthlyCost: req.MonthlyCost,
		IsActive:    true,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   contextutil.GetActorID(ctx),
		UpdatedBy:   contextutil.GetActorID(ctx),
		Version:     1,
	}

	if err := s.repo.Create(ctx, ben); err != nil {
		s.logger.Error("create benefit persist failed", zap.Error(err))
		return BenefitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create benefit success", zap.String("benefit_id", ben.ID.String()))

	return mapToResponse(*ben), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]BenefitResponse, error) {
	benefits, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all benefits failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]BenefitResponse, len(benefits))
	for i, b := range benefits {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BenefitResponse, error) {
	ben, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BenefitResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ben), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error) {
	s.logger.Debug("update benefit requested", zap.String("benefit_id", id))

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return BenefitResponse{}, benefiterrors.ErrInvalidDateFormat
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return BenefitResponse{}, benefiterrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update benefit begin tx failed", zap.Error(err))
		return BenefitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ben, err := qtx.FindByID(ctx, id)
	if err != nil {
		return BenefitResponse{}, mapRepositoryError(err)
	}

	ben.BenefitType = req.BenefitType
	ben.Description = req.Description
	ben.Provider = req.Provider
	ben.MonthlyCost = req.MonthlyCost
	ben.StartDate = startDate
	ben.EndDate = endDate
	ben.UpdatedBy = contextutil.GetActorID(ctx)
	ben.Version = req.Version

	if err := qtx.Update(ctx, ben); err != nil {
		s.logger.Warn("update benefit persist failed", zap.String("benefit_id", id), zap.Error(err))
		return BenefitResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update benefit commit failed", zap.Error(err))
		return BenefitResponse{}, err
	}

	s.logger.Info("update benefit success", zap.String("benefit_id", id))

	return mapToResponse(*ben), nil
}

func (s *service) Activate(ctx context.Context, id string) (BenefitResponse, error) {
	s.logger.Debug("activate benefit requested", zap.String("benefit_id", id))

	return s.toggle(ctx, id, "activate", func(ben *Benefit) {
		ben.IsActive = true
		ben.EndDate = nil
	})
}

func (s *service) Deactivate(ctx context.Context, id string) (BenefitResponse, error) {
	s.logger.Debug("deactivate benefit requested", zap.String("benefit_id", id))

	return s.toggle(ctx, id, "deactivate", func(ben *Benefit) {
		now := time.Now().UTC()
		ben.IsActive = false
		ben.EndDate = &now
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete benefit requested", zap.String("benefit_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete benefit failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete benefit success", zap.String("benefit_id", id))
	return nil
}

func (s *service) toggle(ctx context.Context, id, action string, apply func(*Benefit)) (BenefitResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("benefit toggle begin tx failed", zap.String("action", action), zap.Error(err))
		return BenefitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ben, err := qtx.FindByID(ctx, id)
	if err != nil {
		return BenefitResponse{}, mapRepositoryError(err)
	}

	apply(ben)
	ben.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, ben); err != nil {
		s.logger.Warn("benefit toggle persist failed",
			zap.String("action", action),
			zap.String("benefit_id", id),
			zap.Error(err),
		)
		return BenefitResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("benefit toggle commit failed", zap.String("action", action), zap.Error(err))
		return BenefitResponse{}, err
	}

	s.logger.Info("benefit toggle success",
		zap.String("action", action),
		zap.String("benefit_id", id),
		zap.Bool("is_active", ben.IsActive),
	)

	return mapToResponse(*ben), nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(ben Benefit) BenefitResponse {
	resp := BenefitResponse{
		ID:          ben.ID.String(),
		EmployeeID:  ben.EmployeeID.String(),
		BenefitType: ben.BenefitType,
		Description: ben.Description,
		Provider:    ben.Provider,
		MonthlyCost: ben.MonthlyCost,
		IsActive:    ben.IsActive,
		StartDate:   ben.StartDate.Format("2006-01-02"),
		Version:     ben.Version,
	}
	if ben.EndDate != nil {
		resp.EndDate = ben.EndDate.Format("2006-01-02")
	}
	return resp
}
