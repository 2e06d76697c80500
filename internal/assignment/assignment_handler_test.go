package assignment_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-dispo/internal/assignment"
	assignmenterrors "go-dispo/internal/assignment/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAssignmentService struct {
	CreateFn  func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error)
	GetAllFn  func(ctx context.Context, filter assignment.ListFilter) ([]assignment.AssignmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (assignment.AssignmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeAssignmentService) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeAssignmentService) GetAll(ctx context.Context, filter assignment.ListFilter) ([]assignment.AssignmentResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeAssignmentService) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAssignmentService) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeAssignmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

// --- Test Create ---
func TestAssignmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		shiftID := uuid.New().String()
		personID := uuid.New().String()

		svc := &fakeAssignmentService{
			CreateFn: func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
				assert.Equal(t, shiftID, req.ShiftInstanceID)
				assert.Equal(t, personID, req.DisponentID)
				return assignment.AssignmentResponse{
					ID:              uuid.New().String(),
					ShiftInstanceID: req.ShiftInstanceID,
					DisponentID:     req.DisponentID,
					Status:          assignment.StatusAssigned,
				}, nil
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"shift_instance_id":"` + shiftID + `","disponent_id":"` + personID + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := assignment.NewHandler(&fakeAssignmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		svc := &fakeAssignmentService{
			CreateFn: func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, assignmenterrors.ErrDuplicateAssignment
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"shift_instance_id":"` + uuid.New().String() + `","disponent_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeAssignmentService{
			CreateFn: func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, errors.New("failed")
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"shift_instance_id":"` + uuid.New().String() + `","disponent_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// --- Test GetAll ---
func TestAssignmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query filters through", func(t *testing.T) {
		shiftID := uuid.New().String()

		svc := &fakeAssignmentService{
			GetAllFn: func(ctx context.Context, filter assignment.ListFilter) ([]assignment.AssignmentResponse, error) {
				if assert.NotNil(t, filter.ShiftInstanceID) {
					assert.Equal(t, shiftID, *filter.ShiftInstanceID)
				}
				if assert.NotNil(t, filter.Status) {
					assert.Equal(t, assignment.StatusTentative, *filter.Status)
				}
				assert.Nil(t, filter.DisponentID)
				return []assignment.AssignmentResponse{}, nil
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet,
			"/assignments?shift_instance_id="+shiftID+"&status=TENTATIVE", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// --- Test GetByID ---
func TestAssignmentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeAssignmentService{
			GetByIDFn: func(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/assignments/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// --- Test Delete ---
func TestAssignmentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()

		svc := &fakeAssignmentService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/assignments/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
