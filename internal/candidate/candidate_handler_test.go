package candidate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-admin/internal/candidate"
	candidateerrors "hr-admin/internal/candidate/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCandidateService struct {
	createFn            func(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error)
	getAllFn            func(ctx context.Context, filter candidate.ListFilter) ([]candidate.CandidateResponse, error)
	getByIDFn           func(ctx context.Context, id string) (candidate.CandidateResponse, error)
	updateFn            func(ctx context.Context, id string, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error)
	scheduleInterviewFn func(ctx context.Context, id string, req candidate.ScheduleInterviewRequest) (candidate.CandidateResponse, error)
	makeOfferFn         func(ctx context.Context, id string) (candidate.CandidateResponse, error)
	hireFn              func(ctx context.Context, id string) (candidate.HireCandidateResponse, error)
	rejectFn            func(ctx context.Context, id string, req candidate.RejectCandidateRequest) (candidate.CandidateResponse, error)
	getStatsFn          func(ctx context.Context) (candidate.RecruitmentStatsResponse, error)
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakeCandidateService) Create(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeCandidateService) GetAll(ctx context.Context, filter candidate.ListFilter) ([]candidate.CandidateResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeCandidateService) GetByID(ctx context.Context, id string) (candidate.CandidateResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeCandidateService) Update(ctx context.Context, id string, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeCandidateService) ScheduleInterview(ctx context.Context, id string, req candidate.ScheduleInterviewRequest) (candidate.CandidateResponse, error) {
	return f.scheduleInterviewFn(ctx, id, req)
}
func (f *fakeCandidateService) MakeOffer(ctx context.Context, id string) (candidate.CandidateResponse, error) {
	return f.makeOfferFn(ctx, id)
}
func (f *fakeCandidateService) HireCandidate(ctx context.Context, id string) (candidate.HireCandidateResponse, error) {
	return f.hireFn(ctx, id)
}
func (f *fakeCandidateService) RejectCandidate(ctx context.Context, id string, req candidate.RejectCandidateRequest) (candidate.CandidateResponse, error) {
	return f.rejectFn(ctx, id, req)
}
func (f *fakeCandidateService) GetStats(ctx context.Context) (candidate.RecruitmentStatsResponse, error) {
	return f.getStatsFn(ctx)
}
func (f *fakeCandidateService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestCandidateHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		openingID := uuid.New().String()

		svc := &fakeCandidateService{
			createFn: func(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
				assert.Equal(t, openingID, req.JobOpeningID)
				return candidate.CandidateResponse{
					ID:        uuid.New().String(),
					FirstName: req.FirstName,
					LastName:  req.LastName,
					Email:     req.Email,
					Status:    candidate.StatusApplied,
				}, nil
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","job_opening_id":"` + openingID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "ada@example.com")
		assert.Contains(t, w.Body.String(), candidate.StatusApplied)
	})

	t.Run("validation error", func(t *testing.T) {
		h := candidate.NewHandler(&fakeCandidateService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed opening", func(t *testing.T) {
		svc := &fakeCandidateService{
			createFn: func(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
				return candidate.CandidateResponse{}, candidateerrors.ErrJobOpeningNotOpen
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","job_opening_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "open position")
	})
}

func TestCandidateHandler_Hire(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeCandidateService{
			hireFn: func(ctx context.Context, gotID string) (candidate.HireCandidateResponse, error) {
				assert.Equal(t, id, gotID)
				return candidate.HireCandidateResponse{
					Candidate:  candidate.CandidateResponse{ID: id, Status: candidate.StatusHired},
					EmployeeID: employeeID,
					EmpNo:      "EMP20260042",
				}, nil
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/candidates/"+id+"/hire", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Hire(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "EMP20260042")
		assert.Contains(t, w.Body.String(), employeeID)
	})

	t.Run("no active offer", func(t *testing.T) {
		svc := &fakeCandidateService{
			hireFn: func(ctx context.Context, id string) (candidate.HireCandidateResponse, error) {
				return candidate.HireCandidateResponse{}, candidateerrors.ErrHireNotAllowed
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/candidates/"+id+"/hire", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Hire(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCandidateHandler_Reject(t *testing.T) {
	t.Run("empty body uses default reason", func(t *testing.T) {
		var gotReq candidate.RejectCandidateRequest
		svc := &fakeCandidateService{
			rejectFn: func(ctx context.Context, id string, req candidate.RejectCandidateRequest) (candidate.CandidateResponse, error) {
				gotReq = req
				return candidate.CandidateResponse{ID: id, Status: candidate.StatusRejected}, nil
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/candidates/"+id+"/reject", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, gotReq.Reason)
	})

	t.Run("hired candidate", func(t *testing.T) {
		svc := &fakeCandidateService{
			rejectFn: func(ctx context.Context, id string, req candidate.RejectCandidateRequest) (candidate.CandidateResponse, error) {
				return candidate.CandidateResponse{}, candidateerrors.ErrRejectHired
			},
		}

		h := candidate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/candidates/"+id+"/reject", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Reject(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCandidateHandler_GetAll_Pagination(t *testing.T) {
	svc := &fakeCandidateService{
		getAllFn: func(ctx context.Context, filter candidate.ListFilter) ([]candidate.CandidateResponse, error) {
			assert.Equal(t, "UNDER_REVIEW", filter.Status)
			out := make([]candidate.CandidateResponse, 25)
			for i := range out {
				out[i] = candidate.CandidateResponse{ID: uuid.New().String(), Status: "UNDER_REVIEW"}
			}
			return out, nil
		},
	}

	h := candidate.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/candidates?status=under_review&page=2&page_size=10", nil)
	c.Request = req

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":25`)
	assert.Contains(t, w.Body.String(), `"page":2`)
}

func TestCandidateHandler_GetStats_ServiceError(t *testing.T) {
	svc := &fakeCandidateService{
		getStatsFn: func(ctx context.Context) (candidate.RecruitmentStatsResponse, error) {
			return candidate.RecruitmentStatsResponse{}, errors.New("query failed")
		},
	}

	h := candidate.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/candidates/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
