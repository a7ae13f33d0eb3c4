package salary

import (
	"context"
	"database/sql"
	"testing"
	"time"

	salaryerrors "hr-admin/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn               func(ctx context.Context, sal *Salary) error
	findAllFn              func(ctx context.Context, filter ListFilter) ([]Salary, error)
	findByIDFn             func(ctx context.Context, id string) (*Salary, error)
	findLatestByEmployeeFn func(ctx context.Context, employeeID string) (*Salary, error)
	getEmployeeSnapshotFn  func(ctx context.Context, employeeID string) (*EmployeeSnapshot, error)
	createHistoryFn        func(ctx context.Context, hist *SalaryHistory) error
	findHistoryByIDFn      func(ctx context.Context, id string) (*SalaryHistory, error)
	listHistoryFn          func(ctx context.Context, employeeID string) ([]SalaryHistory, error)
	listForReportFn        func(ctx context.Context) ([]ReportRow, error)
	updateFn               func(ctx context.Context, sal *Salary) error
	deleteFn               func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, sal *Salary) error {
	return f.createFn(ctx, sal)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]Salary, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Salary, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindLatestByEmployee(ctx context.Context, employeeID string) (*Salary, error) {
	return f.findLatestByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) GetEmployeeSnapshot(ctx context.Context, employeeID string) (*EmployeeSnapshot, error) {
	return f.getEmployeeSnapshotFn(ctx, employeeID)
}
func (f *fakeRepo) CreateHistory(ctx context.Context, hist *SalaryHistory) error {
	return f.createHistoryFn(ctx, hist)
}
func (f *fakeRepo) FindHistoryByID(ctx context.Context, id string) (*SalaryHistory, error) {
	return f.findHistoryByIDFn(ctx, id)
}
func (f *fakeRepo) ListHistory(ctx context.Context, employeeID string) ([]SalaryHistory, error) {
	return f.listHistoryFn(ctx, employeeID)
}
func (f *fakeRepo) ListForReport(ctx context.Context) ([]ReportRow, error) {
	return f.listForReportFn(ctx)
}
func (f *fakeRepo) Update(ctx context.Context, sal *Salary) error {
	return f.updateFn(ctx, sal)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func ptr(v int64) *int64 { return &v }

func TestSalary_Total(t *testing.T) {
	sal := Salary{BasicSalary: 100000}
	assert.Equal(t, int64(100000), sal.Total())

	sal.HousingAllowance = ptr(20000)
	sal.MedicalAllowance = ptr(5000)
	assert.Equal(t, int64(125000), sal.Total())

	sal.TransportAllowance = ptr(10000)
	sal.OtherAllowance = ptr(1)
	assert.Equal(t, int64(135001), sal.Total())
}

func TestService_Create_FirstSalaryHasNoHistory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	repo := &fakeRepo{
		getEmployeeSnapshotFn: func(ctx context.Context, id string) (*EmployeeSnapshot, error) {
			return &EmployeeSnapshot{ID: id, FullName: "Ada Lovelace"}, nil
		},
		findLatestByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createHistoryFn: func(ctx context.Context, hist *SalaryHistory) error {
			t.Fatal("a first salary must not produce a history row")
			return nil
		},
		createFn: func(ctx context.Context, sal *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateSalaryRequest{
		EmployeeID:    employeeID,
		BasicSalary:   100000,
		EffectiveDate: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, int64(100000), resp.TotalSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ExistingSalaryAppendsHistory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	previous := &Salary{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		BasicSalary: 100000,
		Status:      StatusApproved,
	}

	var hist *SalaryHistory
	repo := &fakeRepo{
		getEmployeeSnapshotFn: func(ctx context.Context, id string) (*EmployeeSnapshot, error) {
			return &EmployeeSnapshot{ID: id}, nil
		},
		findLatestByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
			return previous, nil
		},
		createHistoryFn: func(ctx context.Context, h *SalaryHistory) error {
			hist = h
			return nil
		},
		createFn: func(ctx context.Context, sal *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Create(context.Background(), CreateSalaryRequest{
		EmployeeID:       employeeID.String(),
		BasicSalary:      110000,
		HousingAllowance: ptr(20000),
		EffectiveDate:    "2026-09-01",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, hist) {
		assert.Equal(t, "Salary Update", hist.Reason)
		assert.Equal(t, int64(100000), hist.OldSalary)
		assert.Equal(t, int64(130000), hist.NewSalary)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		getEmployeeSnapshotFn: func(ctx context.Context, id string) (*EmployeeSnapshot, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)

	_, err := svc.Create(context.Background(), CreateSalaryRequest{
		EmployeeID:    uuid.New().String(),
		BasicSalary:   100000,
		EffectiveDate: "2026-09-01",
	})

	assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
}

func TestService_Update_ChangedTotalResetsApproval(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	approvedAt := time.Now().UTC()
	sal := &Salary{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		BasicSalary: 100000,
		Status:      StatusApproved,
		ApprovedBy:  "hr.manager",
		ApprovedAt:  &approvedAt,
		Version:     2,
	}

	var hist *SalaryHistory
	var saved *Salary
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Salary, error) { return sal, nil },
		createHistoryFn: func(ctx context.Context, h *SalaryHistory) error {
			hist = h
			return nil
		},
		updateFn: func(ctx context.Context, s *Salary) error {
			saved = s
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), sal.ID.String(), UpdateSalaryRequest{
		BasicSalary:   120000,
		EffectiveDate: "2026-10-01",
		Version:       2,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Empty(t, saved.ApprovedBy)
	assert.Nil(t, saved.ApprovedAt)
	assert.Empty(t, saved.RejectionReason)
	if assert.NotNil(t, hist) {
		assert.Equal(t, "Salary Modification", hist.Reason)
		assert.Equal(t, int64(100000), hist.OldSalary)
		assert.Equal(t, int64(120000), hist.NewSalary)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_UnchangedTotalKeepsApproval(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sal := &Salary{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		BasicSalary: 100000,
		Status:      StatusApproved,
		ApprovedBy:  "hr.manager",
		Version:     1,
	}

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Salary, error) { return sal, nil },
		createHistoryFn: func(ctx context.Context, h *SalaryHistory) error {
			t.Fatal("an unchanged total must not produce a history row")
			return nil
		},
		updateFn: func(ctx context.Context, s *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), sal.ID.String(), UpdateSalaryRequest{
		BasicSalary:   100000,
		EffectiveDate: "2026-10-01",
		Version:       1,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, "hr.manager", resp.ApprovedBy)
}

func TestService_Approve(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sal := &Salary{ID: uuid.New(), EmployeeID: uuid.New(), BasicSalary: 100000, Status: StatusPending, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Salary, error) { return sal, nil },
		updateFn:   func(ctx context.Context, s *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), sal.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.NotEmpty(t, resp.ApprovedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Reject_BlankReasonDefaults(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sal := &Salary{ID: uuid.New(), EmployeeID: uuid.New(), BasicSalary: 100000, Status: StatusPending, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Salary, error) { return sal, nil },
		updateFn:   func(ctx context.Context, s *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Reject(context.Background(), sal.ID.String(), RejectSalaryRequest{Reason: "   "})

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	assert.Equal(t, "Rejected", resp.RejectionReason)
}

func TestService_BulkUpdate_RequiresAdjustment(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.BulkUpdate(context.Background(), BulkUpdateRequest{
		EmployeeIDs:   []string{uuid.New().String()},
		EffectiveDate: "2026-09-01",
	})

	assert.ErrorIs(t, err, salaryerrors.ErrNoAdjustment)
}

func TestService_BulkUpdate_Arithmetic(t *testing.T) {
	cases := []struct {
		name      string
		pct       float64
		flat      int64
		wantBasic int64
	}{
		{"percentage only", 10, 0, 110000},
		{"flat only", 0, 5000, 105000},
		{"percentage and flat", 10, 5000, 115000},
		{"floored at zero", -100, -1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer db.Close()

			employeeID := uuid.New()
			var saved *Salary
			repo := &fakeRepo{
				findLatestByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
					return &Salary{ID: uuid.New(), EmployeeID: employeeID, BasicSalary: 100000, Status: StatusApproved, Version: 1}, nil
				},
				createHistoryFn: func(ctx context.Context, h *SalaryHistory) error { return nil },
				updateFn: func(ctx context.Context, s *Salary) error {
					saved = s
					return nil
				},
			}

			svc := NewService(db, repo)

			mock.ExpectBegin()
			mock.ExpectCommit()
			resp, err := svc.BulkUpdate(context.Background(), BulkUpdateRequest{
				EmployeeIDs:   []string{employeeID.String()},
				Percentage:    tc.pct,
				FlatAmount:    tc.flat,
				EffectiveDate: "2026-09-01",
			})

			assert.NoError(t, err)
			assert.Equal(t, 1, resp.Updated)
			assert.Zero(t, resp.Skipped)
			assert.Equal(t, tc.wantBasic, saved.BasicSalary)
			assert.Equal(t, StatusPending, saved.Status)
		})
	}
}

func TestService_BulkUpdate_SkipsEmployeesWithoutSalary(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	withSalary := uuid.New()
	without := uuid.New()
	var historyReasons []string
	repo := &fakeRepo{
		findLatestByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
			if id == without.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return &Salary{ID: uuid.New(), EmployeeID: withSalary, BasicSalary: 100000, Version: 1}, nil
		},
		createHistoryFn: func(ctx context.Context, h *SalaryHistory) error {
			historyReasons = append(historyReasons, h.Reason)
			return nil
		},
		updateFn: func(ctx context.Context, s *Salary) error { return nil },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()
	resp, err := svc.BulkUpdate(context.Background(), BulkUpdateRequest{
		EmployeeIDs:   []string{withSalary.String(), without.String()},
		Percentage:    10,
		EffectiveDate: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, []string{"Bulk Salary Update"}, historyReasons)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_BulkUpdate_SkipsUnchangedTotal(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	repo := &fakeRepo{
		findLatestByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
			return &Salary{ID: uuid.New(), EmployeeID: employeeID, BasicSalary: 0, Version: 1}, nil
		},
		updateFn: func(ctx context.Context, s *Salary) error {
			t.Fatal("an unchanged total must not be written")
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	resp, err := svc.BulkUpdate(context.Background(), BulkUpdateRequest{
		EmployeeIDs:   []string{employeeID.String()},
		Percentage:    10,
		EffectiveDate: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Zero(t, resp.Updated)
	assert.Equal(t, 1, resp.Skipped)
}

func TestService_GetHistory(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	entry := &SalaryHistory{
		ID:            uuid.New(),
		SalaryID:      uuid.New(),
		EmployeeID:    uuid.New(),
		OldSalary:     100000,
		NewSalary:     130000,
		EffectiveDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Reason:        "Salary Update",
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepo{
			findHistoryByIDFn: func(ctx context.Context, id string) (*SalaryHistory, error) { return entry, nil },
		}
		svc := NewService(db, repo)

		resp, err := svc.GetHistory(context.Background(), entry.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), resp.OldSalary)
		assert.Equal(t, int64(130000), resp.NewSalary)
		assert.Equal(t, "2026-07-01", resp.EffectiveDate)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeRepo{
			findHistoryByIDFn: func(ctx context.Context, id string) (*SalaryHistory, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(db, repo)

		_, err := svc.GetHistory(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestBuildReport_Empty(t *testing.T) {
	report := buildReport(nil)

	assert.Zero(t, report.TotalRecords)
	assert.Zero(t, report.TotalSalary)
	assert.Zero(t, report.AvgSalary)
	assert.Empty(t, report.ByDepartment)
	assert.Empty(t, report.ByStatus)
}

func TestBuildReport_Buckets(t *testing.T) {
	rows := []ReportRow{
		{EmployeeID: "a", Department: "Engineering", Status: StatusApproved, BasicSalary: 100000, HousingAllowance: ptr(20000)},
		{EmployeeID: "b", Department: "Engineering", Status: StatusPending, BasicSalary: 80000},
		{EmployeeID: "c", Department: "", Status: StatusApproved, BasicSalary: 60000},
	}

	report := buildReport(rows)

	assert.Equal(t, int64(3), report.TotalRecords)
	assert.Equal(t, int64(260000), report.TotalSalary)
	assert.Equal(t, int64(86666), report.AvgSalary)

	if assert.Len(t, report.ByDepartment, 2) {
		assert.Equal(t, "Engineering", report.ByDepartment[0].Department)
		assert.Equal(t, int64(2), report.ByDepartment[0].Headcount)
		assert.Equal(t, int64(200000), report.ByDepartment[0].TotalSalary)
		assert.Equal(t, int64(100000), report.ByDepartment[0].AvgSalary)
		assert.Equal(t, "Unassigned", report.ByDepartment[1].Department)
		assert.Equal(t, int64(1), report.ByDepartment[1].Headcount)
	}

	if assert.Len(t, report.ByStatus, 2) {
		assert.Equal(t, StatusApproved, report.ByStatus[0].Status)
		assert.Equal(t, int64(2), report.ByStatus[0].Count)
		assert.Equal(t, StatusPending, report.ByStatus[1].Status)
	}
}

func TestService_Approve_StaleRowSurfacesConflict(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sal := &Salary{ID: uuid.New(), EmployeeID: uuid.New(), BasicSalary: 100000, Status: StatusPending, Version: 1}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Salary, error) { return sal, nil },
		updateFn:   func(ctx context.Context, s *Salary) error { return ErrRowChanged },
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), sal.ID.String())

	assert.ErrorIs(t, err, salaryerrors.ErrSalaryConflict)
}
