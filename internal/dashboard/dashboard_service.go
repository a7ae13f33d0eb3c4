package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	recentHireWindow = 30 * 24 * time.Hour
	recentLimit      = 5
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetOverview(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetOverview(ctx context.Context) (DashboardResponse, error) {
	var resp DashboardResponse
	var err error

	if resp.ActiveEmployees, err = s.repo.CountActiveEmployees(ctx); err != nil {
		s.logger.Error("dashboard active employee count failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if resp.OpenPositions, err = s.repo.CountOpenPositions(ctx); err != nil {
		s.logger.Error("dashboard open position count failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if resp.PendingCandidates, err = s.repo.CountPendingCandidates(ctx); err != nil {
		s.logger.Error("dashboard pending candidate count failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if resp.TotalEquipment, resp.AssignedEquipment, err = s.repo.CountEquipment(ctx); err != nil {
		s.logger.Error("dashboard equipment count failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if resp.MonthlyPayroll, err = s.repo.MonthlyPayroll(ctx); err != nil {
		s.logger.Error("dashboard payroll sum failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	since := time.Now().UTC().Add(-recentHireWindow)
	hires, err := s.repo.ListRecentHires(ctx, since, recentLimit)
	if err != nil {
		s.logger.Error("dashboard recent hires failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	resp.RecentHires = make([]RecentHireResponse, len(hires))
	for i, h := range hires {
		r := RecentHireResponse{
			ID:         h.ID,
			FullName:   h.FullName,
			EmpNo:      h.EmpNo,
			Department: h.Department,
		}
		if h.HireDate != nil {
			r.HireDate = h.HireDate.Format("2006-01-02")
		}
		resp.RecentHires[i] = r
	}

	candidates, err := s.repo.ListRecentCandidates(ctx, recentLimit)
	if err != nil {
		s.logger.Error("dashboard recent candidates failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	resp.RecentCandidates = make([]RecentCandidateResponse, len(candidates))
	for i, c := range candidates {
		resp.RecentCandidates[i] = RecentCandidateResponse{
			ID:          c.ID,
			FullName:    c.FullName,
			Status:      c.Status,
			JobTitle:    c.JobTitle,
			AppliedDate: c.AppliedDate.Format("2006-01-02"),
		}
	}

	return resp, nil
}
