package candidate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	candidateerrors "hr-admin/internal/candidate/errors"
	"hr-admin/internal/employee"
	"hr-admin/internal/events"
	"hr-admin/internal/messaging/kafka"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const notSpecified = "Not Specified"

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]CandidateResponse, error)
	GetByID(ctx context.Context, id string) (CandidateResponse, error)
	Update(ctx context.Context, id string, req UpdateCandidateRequest) (CandidateResponse, error)
	ScheduleInterview(ctx context.Context, id string, req ScheduleInterviewRequest) (CandidateResponse, error)
	MakeOffer(ctx context.Context, id string) (CandidateResponse, error)
	HireCandidate(ctx context.Context, id string) (HireCandidateResponse, error)
	RejectCandidate(ctx context.Context, id string, req RejectCandidateRequest) (CandidateResponse, error)
	GetStats(ctx context.Context) (RecruitmentStatsResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		counter:      counterRepo,
		outbox:       outbox,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error) {
	s.logger.Debug("create candidate requested",
		zap.String("email", req.Email),
		zap.String("job_opening_id", req.JobOpeningID),
	)

	snap, err := s.repo.GetOpeningSnapshot(ctx, req.JobOpeningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CandidateResponse{}, candidateerrors.ErrJobOpeningNotFound
		}
		s.logger.Error("create candidate opening lookup failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	if snap.Status != "OPEN" {
		s.logger.Warn("create candidate rejected, opening not open",
			zap.String("job_opening_id", req.JobOpeningID),
			zap.String("opening_status", snap.Status),
		)
		return CandidateResponse{}, candidateerrors.ErrJobOpeningNotOpen
	}

	openingID, err := uuid.Parse(req.JobOpeningID)
	if err != nil {
		return CandidateResponse{}, candidateerrors.ErrJobOpeningNotFound
	}

	cand := &Candidate{
		ID:           uuid.New(),
		Status:       StatusApplied,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		JobOpeningID: &openingID,
		ResumeURL:    req.ResumeURL,
		CoverLetter:  req.CoverLetter,
		Notes:        req.Notes,
		AppliedDate:  time.Now().UTC(),
		CreatedBy:    contextutil.GetActorID(ctx),
		UpdatedBy:    contextutil.GetActorID(ctx),
		Version:      1,
	}

	if err := s.repo.Create(ctx, cand); err != nil {
		s.logger.Error("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create candidate success", zap.String("candidate_id", cand.ID.String()))

	return mapToResponse(*cand), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]CandidateResponse, error) {
	candidates, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all candidates failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(candidates), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CandidateResponse, error) {
	cand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cand), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCandidateRequest) (CandidateResponse, error) {
	s.logger.Debug("update candidate requested", zap.String("candidate_id", id))

	if !IsValidStatus(req.Status) {
		return CandidateResponse{}, candidateerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update candidate begin tx failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cand, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}

	cand.FirstName = req.FirstName
	cand.LastName = req.LastName
	cand.Email = req.Email
	cand.Phone = req.Phone
	cand.ResumeURL = req.ResumeURL
	cand.CoverLetter = req.CoverLetter
	cand.Notes = req.Notes
	cand.Status = req.Status
	cand.UpdatedBy = contextutil.GetActorID(ctx)
	cand.Version = req.Version

	if err := qtx.Update(ctx, cand); err != nil {
		s.logger.Warn("update candidate persist failed", zap.String("candidate_id", id), zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update candidate commit failed", zap.Error(err))
		return CandidateResponse{}, err
	}

	s.logger.Info("update candidate success", zap.String("candidate_id", id))

	return mapToResponse(*cand), nil
}

func (s *service) ScheduleInterview(ctx context.Context, id string, req ScheduleInterviewRequest) (CandidateResponse, error) {
	s.logger.Debug("schedule interview requested", zap.String("candidate_id", id))

	interviewDate, err := parseDate(req.InterviewDate)
	if err != nil {
		return CandidateResponse{}, candidateerrors.ErrInvalidDateFormat
	}
	if !interviewDate.After(time.Now()) {
		return CandidateResponse{}, candidateerrors.ErrInterviewDateInPast
	}

	return s.transition(ctx, id, "schedule interview", func(cand *Candidate) error {
		if !cand.CanScheduleInterview() {
			return candidateerrors.ErrInterviewNotAllowed
		}
		cand.Status = StatusInterviewed
		cand.InterviewDate = &interviewDate
		return nil
	})
}

func (s *service) MakeOffer(ctx context.Context, id string) (CandidateResponse, error) {
	s.logger.Debug("make offer requested", zap.String("candidate_id", id))

	return s.transition(ctx, id, "make offer", func(cand *Candidate) error {
		if cand.Status != StatusInterviewed {
			return candidateerrors.ErrOfferNotAllowed
		}
		cand.Status = StatusOffered
		return nil
	})
}

func (s *service) RejectCandidate(ctx context.Context, id string, req RejectCandidateRequest) (CandidateResponse, error) {
	s.logger.Debug("reject candidate requested", zap.String("candidate_id", id))

	return s.transition(ctx, id, "reject candidate", func(cand *Candidate) error {
		if cand.Status == StatusHired {
			return candidateerrors.ErrRejectHired
		}
		cand.Status = StatusRejected
		if req.Reason != "" {
			cand.Notes = req.Reason
		}
		return nil
	})
}

// HireCandidate promotes an offered candidate into a new employee record.
// The employee insert, the candidate transition, and the outbox event all
// ride one transaction; a failure anywhere leaves no trace of the hire.
func (s *service) HireCandidate(ctx context.Context, id string) (HireCandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("hire candidate requested",
		zap.String("request_id", rid),
		zap.String("candidate_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("hire candidate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return HireCandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	etx := s.employeeRepo.WithTx(tx)
	otx := s.outbox.WithTx(tx)

	cand, err := qtx.FindByID(ctx, id)
	if err != nil {
		return HireCandidateResponse{}, mapRepositoryError(err)
	}
	if cand.Status != StatusOffered {
		s.logger.Warn("hire candidate guard failed",
			zap.String("candidate_id", id),
			zap.String("status", cand.Status),
		)
		return HireCandidateResponse{}, candidateerrors.ErrHireNotAllowed
	}

	designation := notSpecified
	department := notSpecified
	if cand.JobOpeningID != nil {
		snap, err := qtx.GetOpeningSnapshot(ctx, cand.JobOpeningID.String())
		switch {
		case err == nil:
			if snap.Status != "OPEN" {
				return HireCandidateResponse{}, candidateerrors.ErrJobOpeningNotOpen
			}
			if snap.JobTitle != "" {
				designation = snap.JobTitle
			}
			if snap.Department != "" {
				department = snap.Department
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Opening was deleted after application; the hire still goes
			// through with placeholder designation and department.
		default:
			s.logger.Error("hire candidate opening lookup failed", zap.Error(err))
			return HireCandidateResponse{}, err
		}
	}

	empNo, err := employee.NextEmployeeNumber(ctx, s.counter)
	if err != nil {
		s.logger.Error("hire candidate generate number failed", zap.Error(err))
		return HireCandidateResponse{}, err
	}

	now := time.Now().UTC()
	empl := &employee.Employee{
		ID:           uuid.New(),
		EmpNo:        empNo,
		FirstName:    cand.FirstName,
		LastName:     cand.LastName,
		EmailAddress: cand.Email,
		PhoneNumber:  employee.ParsePhone(cand.Phone),
		Department:   department,
		Designation:  designation,
		Status:       employee.StatusActive,
		HireDate:     &now,
		CreatedBy:    contextutil.GetActorID(ctx),
		UpdatedBy:    contextutil.GetActorID(ctx),
		Version:      1,
	}

	if err := etx.Create(ctx, empl); err != nil {
		s.logger.Error("hire candidate employee insert failed", zap.Error(err))
		return HireCandidateResponse{}, mapRepositoryError(err)
	}

	cand.Status = StatusHired
	cand.HiredEmployeeID = &empl.ID
	cand.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, cand); err != nil {
		s.logger.Warn("hire candidate transition failed", zap.String("candidate_id", id), zap.Error(err))
		return HireCandidateResponse{}, mapRepositoryError(err)
	}

	payload, err := json.Marshal(events.CandidateHiredEvent{
		EventType:   "candidate_hired",
		RequestID:   rid,
		CandidateID: cand.ID.String(),
		EmployeeID:  empl.ID.String(),
		JobTitle:    designation,
		Department:  department,
		OccurredAt:  now,
	})
	if err != nil {
		return HireCandidateResponse{}, err
	}

	if err := otx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "candidate",
		AggregateID:   cand.ID.String(),
		EventType:     "candidate_hired",
		Topic:         events.CandidateHiredTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("hire candidate outbox insert failed", zap.Error(err))
		return HireCandidateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("hire candidate commit failed", zap.String("request_id", rid), zap.Error(err))
		return HireCandidateResponse{}, err
	}

	s.logger.Info("hire candidate success",
		zap.String("request_id", rid),
		zap.String("candidate_id", cand.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.String("emp_no", empl.EmpNo),
	)

	return HireCandidateResponse{
		Candidate:  mapToResponse(*cand),
		EmployeeID: empl.ID.String(),
		EmpNo:      empl.EmpNo,
	}, nil
}

func (s *service) GetStats(ctx context.Context) (RecruitmentStatsResponse, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("recruitment stats status counts failed", zap.Error(err))
		return RecruitmentStatsResponse{}, err
	}
	byOpening, err := s.repo.CountByOpening(ctx)
	if err != nil {
		s.logger.Error("recruitment stats opening counts failed", zap.Error(err))
		return RecruitmentStatsResponse{}, err
	}

	resp := RecruitmentStatsResponse{
		ByStatus:     make([]StatusCountResponse, 0, len(byStatus)),
		ByJobOpening: make([]OpeningStatsResponse, 0, len(byOpening)),
	}

	for _, sc := range byStatus {
		resp.TotalCandidates += sc.Count
		if sc.Status == StatusHired {
			resp.HiredCandidates = sc.Count
		}
		resp.ByStatus = append(resp.ByStatus, StatusCountResponse{Status: sc.Status, Count: sc.Count})
	}
	resp.HireRate = hireRate(resp.HiredCandidates, resp.TotalCandidates)

	for _, oc := range byOpening {
		resp.ByJobOpening = append(resp.ByJobOpening, OpeningStatsResponse{
			JobTitle: oc.JobTitle,
			Total:    oc.Total,
			Hired:    oc.Hired,
			HireRate: hireRate(oc.Hired, oc.Total),
		})
	}

	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete candidate requested", zap.String("candidate_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete candidate failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete candidate success", zap.String("candidate_id", id))
	return nil
}

// transition runs a guarded read-modify-write on one candidate row. The
// guard mutates the candidate in place or returns the error to surface.
func (s *service) transition(ctx context.Context, id, action string, guard func(*Candidate) error) (CandidateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("candidate transition begin tx failed", zap.String("action", action), zap.Error(err))
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cand, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if err := guard(cand); err != nil {
		s.logger.Warn("candidate transition guard failed",
			zap.String("action", action),
			zap.String("candidate_id", id),
			zap.String("status", cand.Status),
		)
		return CandidateResponse{}, err
	}

	cand.UpdatedBy = contextutil.GetActorID(ctx)

	if err := qtx.Update(ctx, cand); err != nil {
		s.logger.Warn("candidate transition persist failed",
			zap.String("action", action),
			zap.String("candidate_id", id),
			zap.Error(err),
		)
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("candidate transition commit failed", zap.String("action", action), zap.Error(err))
		return CandidateResponse{}, err
	}

	s.logger.Info("candidate transition success",
		zap.String("action", action),
		zap.String("candidate_id", id),
		zap.String("status", cand.Status),
	)

	return mapToResponse(*cand), nil
}

func hireRate(hired, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(hired) / float64(total) * 100
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func mapToResponse(cand Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:          cand.ID.String(),
		FirstName:   cand.FirstName,
		LastName:    cand.LastName,
		FullName:    cand.FullName(),
		Email:       cand.Email,
		Phone:       cand.Phone,
		Status:      cand.Status,
		ResumeURL:   cand.ResumeURL,
		CoverLetter: cand.CoverLetter,
		Notes:       cand.Notes,
		AppliedDate: cand.AppliedDate.Format("2006-01-02"),
		Version:     cand.Version,
	}
	if cand.JobOpeningID != nil {
		resp.JobOpeningID = cand.JobOpeningID.String()
	}
	if cand.InterviewDate != nil {
		resp.InterviewDate = cand.InterviewDate.Format(time.RFC3339)
	}
	if cand.HiredEmployeeID != nil {
		resp.HiredEmployeeID = cand.HiredEmployeeID.String()
	}
	return resp
}

func mapToListResponse(candidates []Candidate) []CandidateResponse {
	res := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		res[i] = mapToResponse(c)
	}
	return res
}
