package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	countActiveEmployeesFn   func(ctx context.Context) (int64, error)
	countOpenPositionsFn     func(ctx context.Context) (int64, error)
	countPendingCandidatesFn func(ctx context.Context) (int64, error)
	countEquipmentFn         func(ctx context.Context) (int64, int64, error)
	monthlyPayrollFn         func(ctx context.Context) (int64, error)
	listRecentHiresFn        func(ctx context.Context, since time.Time, limit int) ([]RecentHire, error)
	listRecentCandidatesFn   func(ctx context.Context, limit int) ([]RecentCandidate, error)
}

func (f *fakeRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	return f.countActiveEmployeesFn(ctx)
}
func (f *fakeRepo) CountOpenPositions(ctx context.Context) (int64, error) {
	return f.countOpenPositionsFn(ctx)
}
func (f *fakeRepo) CountPendingCandidates(ctx context.Context) (int64, error) {
	return f.countPendingCandidatesFn(ctx)
}
func (f *fakeRepo) CountEquipment(ctx context.Context) (int64, int64, error) {
	return f.countEquipmentFn(ctx)
}
func (f *fakeRepo) MonthlyPayroll(ctx context.Context) (int64, error) {
	return f.monthlyPayrollFn(ctx)
}
func (f *fakeRepo) ListRecentHires(ctx context.Context, since time.Time, limit int) ([]RecentHire, error) {
	return f.listRecentHiresFn(ctx, since, limit)
}
func (f *fakeRepo) ListRecentCandidates(ctx context.Context, limit int) ([]RecentCandidate, error) {
	return f.listRecentCandidatesFn(ctx, limit)
}

func healthyRepo() *fakeRepo {
	hired := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	return &fakeRepo{
		countActiveEmployeesFn:   func(ctx context.Context) (int64, error) { return 42, nil },
		countOpenPositionsFn:     func(ctx context.Context) (int64, error) { return 3, nil },
		countPendingCandidatesFn: func(ctx context.Context) (int64, error) { return 7, nil },
		countEquipmentFn:         func(ctx context.Context) (int64, int64, error) { return 50, 30, nil },
		monthlyPayrollFn:         func(ctx context.Context) (int64, error) { return 52500000, nil },
		listRecentHiresFn: func(ctx context.Context, since time.Time, limit int) ([]RecentHire, error) {
			return []RecentHire{
				{ID: "e1", FullName: "Grace Hopper", EmpNo: "EMP20260042", Department: "Engineering", HireDate: &hired},
			}, nil
		},
		listRecentCandidatesFn: func(ctx context.Context, limit int) ([]RecentCandidate, error) {
			return []RecentCandidate{
				{ID: "c1", FullName: "Alan Turing", Status: "INTERVIEWED", JobTitle: "Compiler Engineer", AppliedDate: hired},
			}, nil
		},
	}
}

func TestService_GetOverview(t *testing.T) {
	svc := NewService(healthyRepo())

	resp, err := svc.GetOverview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ActiveEmployees)
	assert.Equal(t, int64(3), resp.OpenPositions)
	assert.Equal(t, int64(7), resp.PendingCandidates)
	assert.Equal(t, int64(50), resp.TotalEquipment)
	assert.Equal(t, int64(30), resp.AssignedEquipment)
	assert.Equal(t, int64(52500000), resp.MonthlyPayroll)
	if assert.Len(t, resp.RecentHires, 1) {
		assert.Equal(t, "Grace Hopper", resp.RecentHires[0].FullName)
		assert.Equal(t, "2026-08-20", resp.RecentHires[0].HireDate)
	}
	if assert.Len(t, resp.RecentCandidates, 1) {
		assert.Equal(t, "Compiler Engineer", resp.RecentCandidates[0].JobTitle)
	}
}

func TestService_GetOverview_HireWindow(t *testing.T) {
	repo := healthyRepo()
	var gotSince time.Time
	repo.listRecentHiresFn = func(ctx context.Context, since time.Time, limit int) ([]RecentHire, error) {
		gotSince = since
		return nil, nil
	}

	svc := NewService(repo)

	_, err := svc.GetOverview(context.Background())

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(-30*24*time.Hour), gotSince, time.Minute)
}

func TestService_GetOverview_PropagatesFailure(t *testing.T) {
	repo := healthyRepo()
	repo.monthlyPayrollFn = func(ctx context.Context) (int64, error) {
		return 0, errors.New("query failed")
	}

	svc := NewService(repo)

	_, err := svc.GetOverview(context.Background())

	assert.Error(t, err)
}
