package equipment

import (
	"context"
	"database/sql"
	"sort"
	"time"

	equipmenterrors "hr-admin/internal/equipment/errors"
	"hr-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=equipment_service.go -destination=mock/equipment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEquipmentRequest) (EquipmentResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EquipmentResponse, error)
	GetByID(ctx context.Context, id string) (EquipmentResponse, error)
	Update(ctx context.Context, id string, req UpdateEquipmentRequest) (EquipmentResponse, error)
	Assign(ctx context.Context, id string, req AssignEquipmentRequest) (EquipmentResponse, error)
	Return(ctx context.Context, id string) (EquipmentResponse, error)
	StartMaintenance(ctx context.Context, id string) (EquipmentResponse, error)
	CompleteMaintenance(ctx context.Context, id string) (EquipmentResponse, error)
	Retire(ctx context.Context, id string) (EquipmentResponse, error)
	GetAuditReport(ctx context.Context) (AuditReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("equipment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("equipment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEquipmentRequest) (EquipmentResponse, error) {
	s.logger.Debug("create equipment requested",
		zap.String("name", req.Name),
		zap.String("equipment_type", req.EquipmentType),
	)

	purchaseDate, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidDateFormat
	}

	eq := &Equipment{
		ID:            uuid.New(),
		Name:          req.Name,
		EquipmentType: req.EquipmentType,
		SerialNumber:  req.SerialNumber,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Status:        StatusAvailable,
		Notes:         req.Notes,
		CreatedBy:     contextutil.GetActorID(ctx),
		UpdatedBy:     contextutil.GetActorID(ctx),
		Version:       1,
	}

	// Creating straight into an assignment is a single action on the
	// intake form, not a separate Assign call.
	if req.AssignedToEmployeeID != "" {
		exists, err := s.repo.EmployeeExists(ctx, req.AssignedToEmployeeID)
		if err != nil {
			s.logger.Error("create equipment employee lookup failed", zap.Error(err))
			return EquipmentResponse{}, err
		}
		if !exists {
			return EquipmentResponse{}, equipmenterrors.ErrEmployeeNotFound
		}
		employeeID, _ := uuid.Parse(req.AssignedToEmployeeID)
		now := time.Now().UTC()
		eq.Status = StatusAssigned
		eq.AssignedToEmployeeID = &employeeID
		eq.AssignmentDate = &now
	}

	if err := s.repo.Create(ctx, eq); err != nil {
		s.logger.Error("create equipment persist failed", zap.Error(err))
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create equipment success", zap.String("equipment_id", eq.ID.String()))

	return mapToResponse(*eq), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EquipmentResponse, error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all equipment failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EquipmentResponse, len(items))
	for i, eq := range items {
		res[i] = mapToResponse(eq)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EquipmentResponse, error) {
	eq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*eq), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEquipmentRequest) (EquipmentResponse, error) {
	s.logger.Debug("update equipment requested", zap.String("equipment_id", id))

	purchaseDate, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update equipment begin tx failed", zap.Error(err))
		return EquipmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	eq, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	eq.Name = req.Name
	eq.EquipmentType = req.EquipmentType
	eq.SerialNumber = req.SerialNumber
	eq.PurchasePrice = req.PurchasePrice
	eq.PurchaseDate = purchaseDate
	eq.Notes = req.Notes
	eq.UpdatedBy = contextutil.GetActorID(ctx)
	eq.Version = req.Version

	if err := qtx.Update(ctx, eq); err != nil {
		s.logger.Warn("update equipment persist failed", zap.String("equipment_id", id), zap.Error(err))
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update equipment commit failed", zap.Error(err))
		return EquipmentResponse{}, err
	}

	s.logger.Info("update equipment success", zap.String("equipment_id", id))

	return mapToResponse(*eq), nil
}

func (s *service) Assign(ctx context.Context, id string, req AssignEquipmentRequest) (EquipmentResponse, error) {
	s.logger.Debug("assign equipment requested",
		zap.String("equipment_id", id),
		zap.String("employee_id", req.EmployeeID),
	)

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("assign equipment employee lookup failed", zap.Error(err))
		return EquipmentResponse{}, err
	}
	if !exists {
		return EquipmentResponse{}, equipmenterrors.ErrEmployeeNotFound
	}
	employeeID, _ := uuid.Parse(req.EmployeeID)

	return s.transition(ctx, id, "assign", func(eq *Equipment) error {
		if eq.Status == StatusRetired {
			return equipmenterrors.ErrAssignRetired
		}
		now := time.Now().UTC()
		eq.Status = StatusAssigned
		eq.AssignedToEmployeeID = &employeeID
		eq.AssignmentDate = &now
		eq.ReturnDate = nil
		return nil
	})
}

func (s *service) Return(ctx context.Context, id string) (EquipmentResponse, error) {
	s.logger.Debug("return equipment requested", zap.String("equipment_id", id))

	return s.transition(ctx, id, "return", func(eq *Equipment) error {
		now := time.Now().UTC()
		eq.Status = StatusAvailable
		eq.AssignedToEmployeeID = nil
		eq.AssignmentDate = nil
		eq.ReturnDate = &now
		return nil
	})
}

func (s *service) StartMaintenance(ctx context.Context, id string) (EquipmentResponse, error) {
	s.logger.Debug("start maintenance requested", zap.String("equipment_id", id))

	return s.transition(ctx, id, "start maintenance", func(eq *Equipment) error {
		eq.Status = StatusUnderMaintenance
		return nil
	})
}

func (s *service) CompleteMaintenance(ctx context.Context, id string) (EquipmentResponse, error) {
	s.logger.Debug("complete maintenance requested", zap.String("equipment_id", id))

	return s.transition(ctx, id, "complete maintenance", func(eq *Equipment) error {
		// An item still linked to someone goes back to them, not to the pool.
		if eq.AssignedToEmployeeID != nil {
			eq.Status = StatusAssigned
		} else {
			eq.Status = StatusAvailable
		}
		return nil
	})
}

func (s *service) Retire(ctx context.Context, id string) (EquipmentResponse, error) {
	s.logger.Debug("retire equipment requested", zap.String("equipment_id", id))

	return s.transition(ctx, id, "retire", func(eq *Equipment) error {
		now := time.Now().UTC()
		eq.Status = StatusRetired
		eq.AssignedToEmployeeID = nil
		eq.AssignmentDate = nil
		eq.ReturnDate = &now
		return nil
	})
}

func (s *service) GetAuditReport(ctx context.Context) (AuditReportResponse, error) {
	rows, err := s.repo.ListForAudit(ctx)
	if err != nil {
		s.logger.Error("equipment audit query failed", zap.Error(err))
		return AuditReportResponse{}, err
	}
	return buildAuditReport(rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete equipment requested", zap.String("equipment_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete equipment failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete equipment success", zap.String("equipment_id", id))
	return nil
}

func (s *service) transition(ctx context.Context, id, action string, guard func(*Equipment) error) (EquipmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("equipment transition begin tx failed", zap.String("action", action), zap.Error(err))
		return EquipmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	eq, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	if err := guard(eq); err != nil {
		s.logger.Warn("equipment transition guard failed",
			zap.String("action", action),
			zap.String("equipment_id", id),
			zap.String("status", eq.Status),
		)
		return EquipmentResponse{}, err
	}

	eq.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, eq); err != nil {
		s.logger.Warn("equipment transition persist failed",
			zap.String("action", action),
			zap.String("equipment_id", id),
			zap.Error(err),
		)
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("equipment transition commit failed", zap.String("action", action), zap.Error(err))
		return EquipmentResponse{}, err
	}

	s.logger.Info("equipment transition success",
		zap.String("action", action),
		zap.String("equipment_id", id),
		zap.String("status", eq.Status),
	)

	return mapToResponse(*eq), nil
}

func buildAuditReport(rows []AuditRow) AuditReportResponse {
	report := AuditReportResponse{
		ByStatus:   []StatusAuditEntry{},
		ByType:     []TypeAuditEntry{},
		ByAssignee: []AssigneeAuditEntry{},
	}

	byStatus := map[string]*StatusAuditEntry{}
	byType := map[string]*TypeAuditEntry{}
	byAssignee := map[string]*AssigneeAuditEntry{}

	for _, row := range rows {
		report.TotalItems++
		if row.PurchasePrice != nil {
			report.TotalValue += *row.PurchasePrice
		}

		st, ok := byStatus[row.Status]
		if !ok {
			st = &StatusAuditEntry{Status: row.Status}
			byStatus[row.Status] = st
		}
		st.Count++

		t, ok := byType[row.EquipmentType]
		if !ok {
			t = &TypeAuditEntry{EquipmentType: row.EquipmentType}
			byType[row.EquipmentType] = t
		}
		t.Count++
		if row.PurchasePrice != nil {
			t.TotalPurchasePrice += *row.PurchasePrice
		}

		if row.AssigneeID != "" {
			a, ok := byAssignee[row.AssigneeID]
			if !ok {
				a = &AssigneeAuditEntry{EmployeeID: row.AssigneeID, EmployeeName: row.AssigneeName}
				byAssignee[row.AssigneeID] = a
			}
			a.Count++
		}
	}

	for _, st := range byStatus {
		report.ByStatus = append(report.ByStatus, *st)
	}
	sort.Slice(report.ByStatus, func(i, j int) bool {
		return report.ByStatus[i].Status < report.ByStatus[j].Status
	})

	for _, t := range byType {
		report.ByType = append(report.ByType, *t)
	}
	sort.Slice(report.ByType, func(i, j int) bool {
		return report.ByType[i].EquipmentType < report.ByType[j].EquipmentType
	})

	for _, a := range byAssignee {
		report.ByAssignee = append(report.ByAssignee, *a)
	}
	sort.Slice(report.ByAssignee, func(i, j int) bool {
		if report.ByAssignee[i].Count != report.ByAssignee[j].Count {
			return report.ByAssignee[i].Count > report.ByAssignee[j].Count
		}
		return report.ByAssignee[i].EmployeeName < report.ByAssignee[j].EmployeeName
	})

	return report
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(eq Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:            eq.ID.String(),
		Name:          eq.Name,
		EquipmentType: eq.EquipmentType,
		SerialNumber:  eq.SerialNumber,
		PurchasePrice: eq.PurchasePrice,
		Status:        eq.Status,
		Notes:         eq.Notes,
		Version:       eq.Version,
	}
	if eq.PurchaseDate != nil {
		resp.PurchaseDate = eq.PurchaseDate.Format("2006-01-02")
	}
	if eq.AssignedToEmployeeID != nil {
		resp.AssignedToEmployeeID = eq.AssignedToEmployeeID.String()
	}
	if eq.AssignmentDate != nil {
		resp.AssignmentDate = eq.AssignmentDate.Format("2006-01-02")
	}
	if eq.ReturnDate != nil {
		resp.ReturnDate = eq.ReturnDate.Format("2006-01-02")
	}
	return resp
}
