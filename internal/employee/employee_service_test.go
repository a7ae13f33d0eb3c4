package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	employeeerrors "hr-admin/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn             func(ctx context.Context, empl *Employee) error
	findAllFn            func(ctx context.Context, filter ListFilter) ([]Employee, error)
	findByIDFn           func(ctx context.Context, id string) (*Employee, error)
	findOptionsFn        func(ctx context.Context) ([]Employee, error)
	findManagerOptionsFn func(ctx context.Context, excludeID string) ([]Employee, error)
	listDepartmentsFn    func(ctx context.Context) ([]string, error)
	getProfileStatsFn    func(ctx context.Context, id string) (ProfileStats, error)
	listSalaryHistoryFn  func(ctx context.Context, id string) ([]SalaryHistoryEntry, error)
	updateFn             func(ctx context.Context, empl *Employee) error
	deleteFn             func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	return f.createFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) {
	return f.findOptionsFn(ctx)
}
func (f *fakeRepo) FindManagerOptions(ctx context.Context, excludeID string) ([]Employee, error) {
	return f.findManagerOptionsFn(ctx, excludeID)
}
func (f *fakeRepo) ListDepartments(ctx context.Context) ([]string, error) {
	return f.listDepartmentsFn(ctx)
}
func (f *fakeRepo) GetProfileStats(ctx context.Context, id string) (ProfileStats, error) {
	return f.getProfileStatsFn(ctx, id)
}
func (f *fakeRepo) ListSalaryHistory(ctx context.Context, id string) ([]SalaryHistoryEntry, error) {
	return f.listSalaryHistoryFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error {
	return f.updateFn(ctx, empl)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestParsePhone(t *testing.T) {
	assert.Equal(t, int64(15550102030), ParsePhone("+1 (555) 010-2030"))
	assert.Equal(t, int64(81234567890), ParsePhone("081234567890"))
	assert.Zero(t, ParsePhone(""))
	assert.Zero(t, ParsePhone("n/a"))
}

func TestNextEmployeeNumber_Format(t *testing.T) {
	counterRepo := &fakeCounterRepo{next: 6}

	empNo, err := NextEmployeeNumber(context.Background(), counterRepo)

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("EMP%d0007", time.Now().Year()), empNo)
}

func TestService_Create_GeneratesNumberWhenMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, empl *Employee) error {
			saved = empl
			return nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "0812-3456-7890",
	})

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("EMP%d0001", time.Now().Year()), resp.EmpNo)
	assert.Equal(t, StatusActive, saved.Status)
	assert.Equal(t, int64(81234567890), saved.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_KeepsProvidedNumber(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, empl *Employee) error { return nil },
	}
	counterRepo := &fakeCounterRepo{}

	svc := NewService(db, repo, counterRepo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmpNo:     "EMP20190042",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMP20190042", resp.EmpNo)
	assert.Zero(t, counterRepo.next)
}

func TestService_Create_InvalidStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, empl *Employee) error {
			t.Fatal("an invalid status must not be persisted")
			return nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Status:    "SUSPENDED",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_SelfManagerIsRejected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := &Employee{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) { return empl, nil },
		updateFn: func(ctx context.Context, e *Employee) error {
			t.Fatal("an employee must not become their own manager")
			return nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), empl.ID.String(), UpdateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Status:    StatusActive,
		ManagerID: empl.ID.String(),
		Version:   1,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrSelfManager)
}

func TestService_Update_TerminationStampsDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := &Employee{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1}
	var saved *Employee
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) { return empl, nil },
		updateFn: func(ctx context.Context, e *Employee) error {
			saved = e
			return nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), empl.ID.String(), UpdateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Status:    StatusTerminated,
		Version:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusTerminated, resp.Status)
	assert.NotNil(t, saved.TerminationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetProfile(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empl := &Employee{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) { return empl, nil },
		getProfileStatsFn: func(ctx context.Context, id string) (ProfileStats, error) {
			return ProfileStats{ActiveBenefits: 2, AssignedEquipment: 3, HasSalary: true}, nil
		},
		listSalaryHistoryFn: func(ctx context.Context, id string) ([]SalaryHistoryEntry, error) {
			return []SalaryHistoryEntry{
				{OldSalary: 100000, NewSalary: 120000, EffectiveDate: time.Now(), Reason: "Salary Modification"},
			}, nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	resp, err := svc.GetProfile(context.Background(), empl.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.ActiveBenefits)
	assert.Equal(t, int64(3), resp.AssignedEquipment)
	assert.True(t, resp.HasSalary)
	if assert.Len(t, resp.SalaryHistory, 1) {
		assert.Equal(t, "Salary Modification", resp.SalaryHistory[0].Reason)
	}
}

func TestService_GetOptions_WithoutCache(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	calls := 0
	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			calls++
			return []Employee{
				{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1},
			}, nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 1, calls)
}

func TestService_GetOptions_CacheHit(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	cached, _ := json.Marshal([]EmployeeResponse{
		{ID: uuid.NewString(), FirstName: "Grace", LastName: "Hopper", FullName: "Grace Hopper", Status: StatusActive},
	})
	redisMock.ExpectGet(EmployeeOptionsKey).SetVal(string(cached))

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			t.Fatal("repository must not be hit when the cache answers")
			return nil, nil
		},
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, rdb)

	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Grace Hopper", resp[0].FullName)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetOptions_CacheMissFallsThrough(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(EmployeeOptionsKey).RedisNil()

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			return []Employee{
				{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1},
			}, nil
		},
	}

	// The write-back Set is fire-and-forget; an unmatched expectation there
	// only surfaces as an ignored error inside the service.
	svc := NewService(db, repo, &fakeCounterRepo{}, rdb)

	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestService_Update_StaleRowSurfacesConflict(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := &Employee{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Status: StatusActive, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) { return empl, nil },
		updateFn:   func(ctx context.Context, e *Employee) error { return ErrRowChanged },
	}

	svc := NewService(db, repo, &fakeCounterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), empl.ID.String(), UpdateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Status:    StatusActive,
		Version:   1,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeConflict)
}
