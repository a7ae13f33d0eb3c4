package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetManagerOptions(ctx context.Context, excludeID string) ([]EmployeeResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetProfile(ctx context.Context, id string) (EmployeeProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !IsValidStatus(status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	managerID, err := s.resolveManager(ctx, qtx, req.ManagerID, "")
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmpNo == "" {
		empNo, err := s.nextEmployeeNumber(ctx)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmpNo = empNo
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmpNo:          req.EmpNo,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		EmailAddress:   req.Email,
		PhoneNumber:    ParsePhone(req.Phone),
		Country:        req.Country,
		Address:        req.Address,
		DateOfBirth:    dateOfBirth,
		Department:     req.Department,
		Designation:    req.Designation,
		Status:         status,
		HireDate:       hireDate,
		ManagerID:      managerID,
		CreatedBy:      contextutil.GetActorID(ctx),
		UpdatedBy:      contextutil.GetActorID(ctx),
		Version:        1,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("emp_no", empl.EmpNo),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("status", filter.Status),
		zap.String("department", filter.Department),
	)
	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a cold cache from fanning out to the database
	// when several admins open an assignment form at once.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetManagerOptions(ctx context.Context, excludeID string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindManagerOptions(ctx, excludeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return departments, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetProfile(ctx context.Context, id string) (EmployeeProfileResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeProfileResponse{}, mapRepositoryError(err)
	}

	stats, err := s.repo.GetProfileStats(ctx, id)
	if err != nil {
		s.logger.Error("get employee profile stats failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeProfileResponse{}, mapRepositoryError(err)
	}

	history, err := s.repo.ListSalaryHistory(ctx, id)
	if err != nil {
		return EmployeeProfileResponse{}, mapRepositoryError(err)
	}

	historyResp := make([]SalaryHistoryEntryResponse, len(history))
	for i, entry := range history {
		historyResp[i] = SalaryHistoryEntryResponse{
			OldSalary:     entry.OldSalary,
			NewSalary:     entry.NewSalary,
			EffectiveDate: entry.EffectiveDate.Format("2006-01-02"),
			Reason:        entry.Reason,
		}
	}

	return EmployeeProfileResponse{
		Employee:          mapToResponse(*empl),
		ActiveBenefits:    stats.ActiveBenefits,
		AssignedEquipment: stats.AssignedEquipment,
		HasSalary:         stats.HasSalary,
		SalaryHistory:     historyResp,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if !IsValidStatus(req.Status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	terminationDate, err := parseOptionalDate(req.TerminationDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	managerID, err := s.resolveManager(ctx, qtx, req.ManagerID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl.FirstName = req.FirstName
	empl.MiddleName = req.MiddleName
	empl.LastName = req.LastName
	empl.EmailAddress = req.Email
	empl.PhoneNumber = ParsePhone(req.Phone)
	empl.Country = req.Country
	empl.Address = req.Address
	empl.DateOfBirth = dateOfBirth
	empl.Department = req.Department
	empl.Designation = req.Designation
	empl.Status = req.Status
	empl.HireDate = hireDate
	empl.TerminationDate = terminationDate
	empl.ManagerID = managerID
	empl.UpdatedBy = contextutil.GetActorID(ctx)
	empl.Version = req.Version

	if req.Status == StatusTerminated && empl.TerminationDate == nil {
		now := time.Now().UTC()
		empl.TerminationDate = &now
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Warn("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) nextEmployeeNumber(ctx context.Context) (string, error) {
	return NextEmployeeNumber(ctx, s.counter)
}

// NextEmployeeNumber draws from an atomic database counter so concurrent
// hires cannot collide the way a count-then-format scheme would.
func NextEmployeeNumber(ctx context.Context, counterRepo counter.Repository) (string, error) {
	nextVal, err := counterRepo.GetNextValue(ctx, "employee_number")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP%d%04d", time.Now().Year(), nextVal), nil
}

func (s *service) resolveManager(ctx context.Context, repo Repository, managerID, selfID string) (*uuid.UUID, error) {
	if managerID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(managerID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}
	if selfID != "" && managerID == selfID {
		return nil, employeeerrors.ErrSelfManager
	}
	if _, err := repo.FindByID(ctx, managerID); err != nil {
		return nil, employeeerrors.ErrManagerNotFound
	}
	return &id, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

// ParsePhone keeps the original system's behavior: phone numbers are stored
// numerically and anything unparsable collapses to 0.
func ParsePhone(phone string) int64 {
	cleaned := ""
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			cleaned += string(r)
		}
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID.String(),
		EmpNo:       empl.EmpNo,
		FirstName:   empl.FirstName,
		MiddleName:  empl.MiddleName,
		LastName:    empl.LastName,
		FullName:    empl.FullName(),
		Email:       empl.EmailAddress,
		Phone:       empl.PhoneNumber,
		Country:     empl.Country,
		Address:     empl.Address,
		Department:  empl.Department,
		Designation: empl.Designation,
		Status:      empl.Status,
		Version:     empl.Version,
	}
	if empl.ProfilePicture != nil {
		resp.ProfilePicture = *empl.ProfilePicture
	}
	if empl.DateOfBirth != nil {
		resp.DateOfBirth = empl.DateOfBirth.Format("2006-01-02")
	}
	if empl.HireDate != nil {
		resp.HireDate = empl.HireDate.Format("2006-01-02")
	}
	if empl.TerminationDate != nil {
		resp.TerminationDate = empl.TerminationDate.Format("2006-01-02")
	}
	if empl.Manager != nil {
		resp.Manager = &ManagerResponse{
			ID:       empl.Manager.ID.String(),
			FullName: empl.Manager.FullName(),
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDateFormat
	}
	return &t, nil
}
