package salary

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	salaryerrors "hr-admin/internal/salary/errors"
	"hr-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	reasonCreate = "Salary Update"
	reasonEdit   = "Salary Modification"
	reasonBulk   = "Bulk Salary Update"

	defaultRejectReason = "Rejected"
	unassignedBucket    = "Unassigned"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]SalaryResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryRequest) (SalaryResponse, error)
	Approve(ctx context.Context, id string) (SalaryResponse, error)
	Reject(ctx context.Context, id string, req RejectSalaryRequest) (SalaryResponse, error)
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkUpdateResponse, error)
	GetHistory(ctx context.Context, id string) (SalaryHistoryResponse, error)
	ListHistory(ctx context.Context, employeeID string) ([]SalaryHistoryResponse, error)
	GetReport(ctx context.Context) (CompensationReportResponse, error)
	ExportReport(ctx context.Context) (*excelize.File, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("create salary requested", zap.String("employee_id", req.EmployeeID))

	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidDateFormat
	}

	if _, err := s.repo.GetEmployeeSnapshot(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
		}
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, _ := uuid.Parse(req.EmployeeID)
	sal := &Salary{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		BasicSalary:        req.BasicSalary,
		HousingAllowance:   req.HousingAllowance,
		TransportAllowance: req.TransportAllowance,
		MedicalAllowance:   req.MedicalAllowance,
		OtherAllowance:     req.OtherAllowance,
		Status:             StatusPending,
		EffectiveDate:      effectiveDate,
		CreatedBy:          contextutil.GetActorID(ctx),
		UpdatedBy:          contextutil.GetActorID(ctx),
		Version:            1,
	}

	// A pre-existing salary makes this a compensation change, which the
	// audit trail must capture.
	previous, err := qtx.FindLatestByEmployee(ctx, req.EmployeeID)
	switch {
	case err == nil:
		if err := qtx.CreateHistory(ctx, &SalaryHistory{
			ID:            uuid.New(),
			SalaryID:      sal.ID,
			EmployeeID:    employeeID,
			OldSalary:     previous.Total(),
			NewSalary:     sal.Total(),
			EffectiveDate: effectiveDate,
			Reason:        reasonCreate,
			CreatedBy:     contextutil.GetActorID(ctx),
		}); err != nil {
			s.logger.Error("create salary history append failed", zap.Error(err))
			return SalaryResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First salary for this employee, nothing to record.
	default:
		return SalaryResponse{}, err
	}

	if err := qtx.Create(ctx, sal); err != nil {
		s.logger.Error("create salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("create salary success",
		zap.String("salary_id", sal.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*sal), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]SalaryResponse, error) {
	salaries, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	sal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sal), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("update salary requested", zap.String("salary_id", id))

	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	oldTotal := sal.Total()

	sal.BasicSalary = req.BasicSalary
	sal.HousingAllowance = req.HousingAllowance
	sal.TransportAllowance = req.TransportAllowance
	sal.MedicalAllowance = req.MedicalAllowance
	sal.OtherAllowance = req.OtherAllowance
	sal.EffectiveDate = effectiveDate
	sal.UpdatedBy = contextutil.GetActorID(ctx)
	sal.Version = req.Version

	if newTotal := sal.Total(); newTotal != oldTotal {
		resetApproval(sal)
		if err := qtx.CreateHistory(ctx, &SalaryHistory{
			ID:            uuid.New(),
			SalaryID:      sal.ID,
			EmployeeID:    sal.EmployeeID,
			OldSalary:     oldTotal,
			NewSalary:     newTotal,
			EffectiveDate: effectiveDate,
			Reason:        reasonEdit,
			CreatedBy:     contextutil.GetActorID(ctx),
		}); err != nil {
			s.logger.Error("update salary history append failed", zap.Error(err))
			return SalaryResponse{}, err
		}
	}

	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Warn("update salary persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("update salary success", zap.String("salary_id", id))

	return mapToResponse(*sal), nil
}

func (s *service) Approve(ctx context.Context, id string) (SalaryResponse, error) {
	s.logger.Debug("approve salary requested", zap.String("salary_id", id))

	return s.decide(ctx, id, "approve", func(sal *Salary, now time.Time) {
		sal.Status = StatusApproved
		sal.ApprovedBy = approverName(ctx)
		sal.ApprovedAt = &now
		sal.RejectionReason = ""
	})
}

func (s *service) Reject(ctx context.Context, id string, req RejectSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("reject salary requested", zap.String("salary_id", id))

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultRejectReason
	}

	return s.decide(ctx, id, "reject", func(sal *Salary, now time.Time) {
		sal.Status = StatusRejected
		sal.ApprovedBy = approverName(ctx)
		sal.ApprovedAt = &now
		sal.RejectionReason = reason
	})
}

// BulkUpdate applies a raise batch best-effort, row by row. A failing row
// is counted skipped and the batch keeps going; there is no rollback of
// rows already written.
func (s *service) BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkUpdateResponse, error) {
	s.logger.Debug("bulk salary update requested",
		zap.Int("employees", len(req.EmployeeIDs)),
		zap.Float64("percentage", req.Percentage),
		zap.Int64("flat_amount", req.FlatAmount),
	)

	if req.Percentage == 0 && req.FlatAmount == 0 {
		return BulkUpdateResponse{}, salaryerrors.ErrNoAdjustment
	}

	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return BulkUpdateResponse{}, salaryerrors.ErrInvalidDateFormat
	}

	var result BulkUpdateResponse
	for _, employeeID := range req.EmployeeIDs {
		if s.applyRaise(ctx, employeeID, req.Percentage, req.FlatAmount, effectiveDate) {
			result.Updated++
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("bulk salary update finished",
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *service) applyRaise(ctx context.Context, employeeID string, pct float64, flat int64, effectiveDate time.Time) bool {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk update begin tx failed", zap.String("employee_id", employeeID), zap.Error(err))
		return false
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("bulk update lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		}
		return false
	}

	oldTotal := sal.Total()

	newBasic := sal.BasicSalary + int64(float64(sal.BasicSalary)*pct/100.0) + flat
	if newBasic < 0 {
		newBasic = 0
	}
	sal.BasicSalary = newBasic
	sal.EffectiveDate = effectiveDate

	newTotal := sal.Total()
	if newTotal == oldTotal {
		return false
	}

	resetApproval(sal)
	sal.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.CreateHistory(ctx, &SalaryHistory{
		ID:            uuid.New(),
		SalaryID:      sal.ID,
		EmployeeID:    sal.EmployeeID,
		OldSalary:     oldTotal,
		NewSalary:     newTotal,
		EffectiveDate: effectiveDate,
		Reason:        reasonBulk,
		CreatedBy:     contextutil.GetActorID(ctx),
	}); err != nil {
		s.logger.Error("bulk update history append failed", zap.String("employee_id", employeeID), zap.Error(err))
		return false
	}

	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Warn("bulk update persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return false
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk update commit failed", zap.String("employee_id", employeeID), zap.Error(err))
		return false
	}

	return true
}

func (s *service) GetHistory(ctx context.Context, id string) (SalaryHistoryResponse, error) {
	entry, err := s.repo.FindHistoryByID(ctx, id)
	if err != nil {
		return SalaryHistoryResponse{}, mapRepositoryError(err)
	}
	return mapHistoryToResponse(*entry), nil
}

func (s *service) ListHistory(ctx context.Context, employeeID string) ([]SalaryHistoryResponse, error) {
	entries, err := s.repo.ListHistory(ctx, employeeID)
	if err != nil {
		s.logger.Error("list salary history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryHistoryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapHistoryToResponse(e)
	}
	return res, nil
}

func mapHistoryToResponse(e SalaryHistory) SalaryHistoryResponse {
	return SalaryHistoryResponse{
		ID:            e.ID.String(),
		SalaryID:      e.SalaryID.String(),
		EmployeeID:    e.EmployeeID.String(),
		OldSalary:     e.OldSalary,
		NewSalary:     e.NewSalary,
		EffectiveDate: e.EffectiveDate.Format("2006-01-02"),
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func (s *service) GetReport(ctx context.Context) (CompensationReportResponse, error) {
	rows, err := s.repo.ListForReport(ctx)
	if err != nil {
		s.logger.Error("compensation report query failed", zap.Error(err))
		return CompensationReportResponse{}, err
	}
	return buildReport(rows), nil
}

func (s *service) ExportReport(ctx context.Context) (*excelize.File, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Compensation"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	summaryHeader := []interface{}{"Total Records", "Total Salary", "Average Salary"}
	f.SetSheetRow(sheet, "A1", &summaryHeader)
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	summaryRow := []interface{}{report.TotalRecords, centsToUnits(report.TotalSalary), centsToUnits(report.AvgSalary)}
	f.SetSheetRow(sheet, "A2", &summaryRow)

	deptHeader := []interface{}{"Department", "Headcount", "Total Salary", "Average Salary"}
	f.SetSheetRow(sheet, "A4", &deptHeader)
	f.SetCellStyle(sheet, "A4", "D4", headerStyle)
	for i, d := range report.ByDepartment {
		cell, _ := excelize.CoordinatesToCellName(1, 5+i)
		row := []interface{}{d.Department, d.Headcount, centsToUnits(d.TotalSalary), centsToUnits(d.AvgSalary)}
		f.SetSheetRow(sheet, cell, &row)
	}

	statusStart := 6 + len(report.ByDepartment)
	cell, _ := excelize.CoordinatesToCellName(1, statusStart)
	statusHeader := []interface{}{"Status", "Count", "Total Salary"}
	f.SetSheetRow(sheet, cell, &statusHeader)
	endCell, _ := excelize.CoordinatesToCellName(3, statusStart)
	f.SetCellStyle(sheet, cell, endCell, headerStyle)
	for i, st := range report.ByStatus {
		cell, _ := excelize.CoordinatesToCellName(1, statusStart+1+i)
		row := []interface{}{st.Status, st.Count, centsToUnits(st.TotalSalary)}
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "D", 18)

	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete salary requested", zap.String("salary_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete salary failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete salary success", zap.String("salary_id", id))
	return nil
}

func (s *service) decide(ctx context.Context, id, action string, apply func(*Salary, time.Time)) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("salary decision begin tx failed", zap.String("action", action), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	apply(sal, time.Now().UTC())
	sal.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Warn("salary decision persist failed",
			zap.String("action", action),
			zap.String("salary_id", id),
			zap.Error(err),
		)
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("salary decision commit failed", zap.String("action", action), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("salary decision success",
		zap.String("action", action),
		zap.String("salary_id", id),
		zap.String("status", sal.Status),
	)

	return mapToResponse(*sal), nil
}

func resetApproval(sal *Salary) {
	sal.Status = StatusPending
	sal.ApprovedBy = ""
	sal.ApprovedAt = nil
	sal.RejectionReason = ""
}

func approverName(ctx context.Context) string {
	if name := contextutil.GetActorName(ctx); name != "" {
		return name
	}
	return contextutil.GetActorID(ctx)
}

func buildReport(rows []ReportRow) CompensationReportResponse {
	report := CompensationReportResponse{
		ByDepartment: []DepartmentCompensation{},
		ByStatus:     []StatusCompensation{},
	}

	byDept := map[string]*DepartmentCompensation{}
	byStatus := map[string]*StatusCompensation{}

	for _, row := range rows {
		total := rowTotal(row)
		report.TotalRecords++
		report.TotalSalary += total

		dept := row.Department
		if dept == "" {
			dept = unassignedBucket
		}
		d, ok := byDept[dept]
		if !ok {
			d = &DepartmentCompensation{Department: dept}
			byDept[dept] = d
		}
		d.Headcount++
		d.TotalSalary += total

		st, ok := byStatus[row.Status]
		if !ok {
			st = &StatusCompensation{Status: row.Status}
			byStatus[row.Status] = st
		}
		st.Count++
		st.TotalSalary += total
	}

	if report.TotalRecords > 0 {
		report.AvgSalary = report.TotalSalary / report.TotalRecords
	}

	for _, d := range byDept {
		if d.Headcount > 0 {
			d.AvgSalary = d.TotalSalary / d.Headcount
		}
		report.ByDepartment = append(report.ByDepartment, *d)
	}
	sort.Slice(report.ByDepartment, func(i, j int) bool {
		return report.ByDepartment[i].Department < report.ByDepartment[j].Department
	})

	for _, st := range byStatus {
		report.ByStatus = append(report.ByStatus, *st)
	}
	sort.Slice(report.ByStatus, func(i, j int) bool {
		return report.ByStatus[i].Status < report.ByStatus[j].Status
	})

	return report
}

func rowTotal(row ReportRow) int64 {
	total := row.BasicSalary
	for _, a := range []*int64{row.HousingAllowance, row.TransportAllowance, row.MedicalAllowance, row.OtherAllowance} {
		if a != nil {
			total += *a
		}
	}
	return total
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func mapToResponse(sal Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:                 sal.ID.String(),
		EmployeeID:         sal.EmployeeID.String(),
		BasicSalary:        sal.BasicSalary,
		HousingAllowance:   sal.HousingAllowance,
		TransportAllowance: sal.TransportAllowance,
		MedicalAllowance:   sal.MedicalAllowance,
		OtherAllowance:     sal.OtherAllowance,
		TotalSalary:        sal.Total(),
		Status:             sal.Status,
		EffectiveDate:      sal.EffectiveDate.Format("2006-01-02"),
		ApprovedBy:         sal.ApprovedBy,
		RejectionReason:    sal.RejectionReason,
		Version:            sal.Version,
	}
	if sal.ApprovedAt != nil {
		resp.ApprovedAt = sal.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(salaries []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(salaries))
	for i, sal := range salaries {
		res[i] = mapToResponse(sal)
	}
	return res
}
