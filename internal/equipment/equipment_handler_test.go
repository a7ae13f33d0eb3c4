package equipment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-admin/internal/equipment"
	equipmenterrors "hr-admin/internal/equipment/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEquipmentService struct {
	createFn              func(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error)
	getAllFn              func(ctx context.Context, filter equipment.ListFilter) ([]equipment.EquipmentResponse, error)
	getByIDFn             func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	updateFn              func(ctx context.Context, id string, req equipment.UpdateEquipmentRequest) (equipment.EquipmentResponse, error)
	assignFn              func(ctx context.Context, id string, req equipment.AssignEquipmentRequest) (equipment.EquipmentResponse, error)
	returnFn              func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	startMaintenanceFn    func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	completeMaintenanceFn func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	retireFn              func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	getAuditReportFn      func(ctx context.Context) (equipment.AuditReportResponse, error)
	deleteFn              func(ctx context.Context, id string) error
}

func (f *fakeEquipmentService) Create(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEquipmentService) GetAll(ctx context.Context, filter equipment.ListFilter) ([]equipment.EquipmentResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeEquipmentService) GetByID(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEquipmentService) Update(ctx context.Context, id string, req equipment.UpdateEquipmentRequest) (equipment.EquipmentResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEquipmentService) Assign(ctx context.Context, id string, req equipment.AssignEquipmentRequest) (equipment.EquipmentResponse, error) {
	return f.assignFn(ctx, id, req)
}
func (f *fakeEquipmentService) Return(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.returnFn(ctx, id)
}
func (f *fakeEquipmentService) StartMaintenance(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.startMaintenanceFn(ctx, id)
}
func (f *fakeEquipmentService) CompleteMaintenance(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.completeMaintenanceFn(ctx, id)
}
func (f *fakeEquipmentService) Retire(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.retireFn(ctx, id)
}
func (f *fakeEquipmentService) GetAuditReport(ctx context.Context) (equipment.AuditReportResponse, error) {
	return f.getAuditReportFn(ctx)
}
func (f *fakeEquipmentService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestEquipmentHandler_Assign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeEquipmentService{
			assignFn: func(ctx context.Context, gotID string, req equipment.AssignEquipmentRequest) (equipment.EquipmentResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, employeeID, req.EmployeeID)
				return equipment.EquipmentResponse{
					ID:                   id,
					Status:               equipment.StatusAssigned,
					AssignedToEmployeeID: employeeID,
				}, nil
			},
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + employeeID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/equipment/"+id+"/assign", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Assign(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), equipment.StatusAssigned)
	})

	t.Run("retired item", func(t *testing.T) {
		svc := &fakeEquipmentService{
			assignFn: func(ctx context.Context, id string, req equipment.AssignEquipmentRequest) (equipment.EquipmentResponse, error) {
				return equipment.EquipmentResponse{}, equipmenterrors.ErrAssignRetired
			},
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		body := `{"employee_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/equipment/"+id+"/assign", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Assign(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := equipment.NewHandler(&fakeEquipmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/equipment/"+id+"/assign", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Assign(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEquipmentHandler_GetAuditReport(t *testing.T) {
	svc := &fakeEquipmentService{
		getAuditReportFn: func(ctx context.Context) (equipment.AuditReportResponse, error) {
			return equipment.AuditReportResponse{
				TotalItems: 4,
				TotalValue: 470000,
				ByType: []equipment.TypeAuditEntry{
					{EquipmentType: "Laptop", Count: 2, TotalPurchasePrice: 430000},
				},
			}, nil
		},
	}

	h := equipment.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/equipment/audit", nil)

	h.GetAuditReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_items":4`)
	assert.Contains(t, w.Body.String(), "Laptop")
}
