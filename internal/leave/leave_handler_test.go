package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payledger/internal/leave"
	leaveerrors "go-payledger/internal/leave/errors"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn  func(ctx context.Context, businessID, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context, businessID, actorID string, canReadAll bool) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, businessID, id string) (leave.LeaveResponse, error)
	submitFn  func(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error)
	cancelFn  func(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error)
	approveFn func(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, businessID, actorID, id, rejectionReason string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, businessID, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, businessID, actorID, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, businessID, actorID string, canReadAll bool) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, businessID, actorID, canReadAll)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, businessID, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, businessID, id)
}
func (f *fakeLeaveService) Submit(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, businessID, actorID, id)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, businessID, actorID, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, businessID, actorID, id string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, businessID, actorID, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, businessID, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, businessID, actorID, id, rejectionReason)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		businessID := uuid.New().String()
		actorID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, bid, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, businessID, bid)
				assert.Equal(t, actorID, aid)
				assert.Equal(t, employeeID, req.EmployeeID)
				return leave.LeaveResponse{
					ID:         uuid.New().String(),
					BusinessID: bid,
					EmployeeID: req.EmployeeID,
					LeaveType:  req.LeaveType,
					StartDate:  req.StartDate,
					EndDate:    req.EndDate,
					TotalDays:  2,
					Reason:     req.Reason,
					Status:     leave.StatusPending,
					CreatedBy:  aid,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","leave_type":"ANNUAL","start_date":"2026-03-10","end_date":"2026-03-11","reason":"family"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("business_id", businessID)
		c.Set("user_id", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, businessID, got.BusinessID)
		assert.Equal(t, "ANNUAL", got.LeaveType)
	})

	t.Run("bad leave type fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","leave_type":"SABBATICAL","start_date":"2026-03-10","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	t.Run("manager reads the whole business", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, bid, aid string, canReadAll bool) ([]leave.LeaveResponse, error) {
				assert.True(t, canReadAll)
				return []leave.LeaveResponse{}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves", nil)
		c.Set("business_id", uuid.New().String())
		c.Set("user_id", uuid.New().String())
		c.Set("role", rbac.RoleManager)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee reads only their own", func(t *testing.T) {
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, bid, aid string, canReadAll bool) ([]leave.LeaveResponse, error) {
				assert.False(t, canReadAll)
				return []leave.LeaveResponse{}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves", nil)
		c.Set("business_id", uuid.New().String())
		c.Set("user_id", uuid.New().String())
		c.Set("role", rbac.RoleEmployee)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	t.Run("invalid transition maps to bad request", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, bid, aid, id, reason string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/x/reject", strings.NewReader(`{"rejection_reason":"no cover"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("business_id", uuid.New().String())
		c.Set("user_id", uuid.New().String())

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("missing reason fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/x/reject", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
