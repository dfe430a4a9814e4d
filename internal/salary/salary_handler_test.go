package salary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payledger/internal/salary"
	salaryerrors "go-payledger/internal/salary/errors"

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

type fakeSalaryService struct {
	calculateFn func(ctx context.Context, businessID, actorID, employeeID string, req salary.CalculateSalaryRequest) (salary.SalaryResponse, error)
	setPaidFn   func(ctx context.Context, businessID, actorID, id string, req salary.SetPaidRequest) (salary.SalaryResponse, error)
	getAllFn    func(ctx context.Context, businessID string, filter salary.QueryFilter) ([]salary.SalaryResponse, error)
	getByIDFn   func(ctx context.Context, businessID, id string) (salary.SalaryResponse, error)
}

func (f *fakeSalaryService) Calculate(ctx context.Context, businessID, actorID, employeeID string, req salary.CalculateSalaryRequest) (salary.SalaryResponse, error) {
	return f.calculateFn(ctx, businessID, actorID, employeeID, req)
}
func (f *fakeSalaryService) SetPaid(ctx context.Context, businessID, actorID, id string, req salary.SetPaidRequest) (salary.SalaryResponse, error) {
	return f.setPaidFn(ctx, businessID, actorID, id, req)
}
func (f *fakeSalaryService) GetAll(ctx context.Context, businessID string, filter salary.QueryFilter) ([]salary.SalaryResponse, error) {
	return f.getAllFn(ctx, businessID, filter)
}
func (f *fakeSalaryService) GetByID(ctx context.Context, businessID, id string) (salary.SalaryResponse, error) {
	return f.getByIDFn(ctx, businessID, id)
}

func TestSalaryHandler_Calculate(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		businessID := uuid.New().String()
		actorID := uuid.New().String()
		employeeID := uuid.New().String()

		svc := &fakeSalaryService{
			calculateFn: func(ctx context.Context, bid, aid, eid string, req salary.CalculateSalaryRequest) (salary.SalaryResponse, error) {
				assert.Equal(t, businessID, bid)
				assert.Equal(t, actorID, aid)
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, 6, req.Month)
				assert.Equal(t, 2025, req.Year)
				return salary.SalaryResponse{
					ID:          uuid.New().String(),
					BusinessID:  bid,
					EmployeeID:  eid,
					Month:       req.Month,
					Year:        req.Year,
					GrossSalary: "3500.00",
					NetSalary:   "2950.00",
				}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/salaries/calculate/"+employeeID, strings.NewReader(`{"month":6,"year":2025}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}
		c.Set("business_id", businessID)
		c.Set("user_id", actorID)

		h.Calculate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got salary.SalaryResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "2950.00", got.NetSalary)
	})

	t.Run("duplicate period maps to conflict", func(t *testing.T) {
		svc := &fakeSalaryService{
			calculateFn: func(ctx context.Context, bid, aid, eid string, req salary.CalculateSalaryRequest) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{}, salaryerrors.ErrDuplicatePeriod
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/salaries/calculate/x", strings.NewReader(`{"month":6,"year":2025}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "employeeId", Value: uuid.New().String()}}
		c.Set("business_id", uuid.New().String())
		c.Set("user_id", uuid.New().String())

		h.Calculate(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("month out of range fails binding", func(t *testing.T) {
		h := salary.NewHandler(&fakeSalaryService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/salaries/calculate/x", strings.NewReader(`{"month":12,"year":2025}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "employeeId", Value: uuid.New().String()}}

		h.Calculate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_GetAll(t *testing.T) {
	t.Run("query filters forwarded", func(t *testing.T) {
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context, bid string, filter salary.QueryFilter) ([]salary.SalaryResponse, error) {
				assert.NotNil(t, filter.Month)
				assert.Equal(t, 6, *filter.Month)
				assert.NotNil(t, filter.Year)
				assert.Equal(t, 2025, *filter.Year)
				assert.NotNil(t, filter.IsPaid)
				assert.False(t, *filter.IsPaid)
				return []salary.SalaryResponse{}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/salaries?month=6&year=2025&is_paid=false", nil)
		c.Set("business_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no filters means nil pointers", func(t *testing.T) {
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context, bid string, filter salary.QueryFilter) ([]salary.SalaryResponse, error) {
				assert.Nil(t, filter.Month)
				assert.Nil(t, filter.Year)
				assert.Nil(t, filter.IsPaid)
				assert.Empty(t, filter.EmployeeID)
				return []salary.SalaryResponse{}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/salaries", nil)
		c.Set("business_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed month filter is rejected", func(t *testing.T) {
		called := false
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context, bid string, filter salary.QueryFilter) ([]salary.SalaryResponse, error) {
				called = true
				return []salary.SalaryResponse{}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/salaries?month=juli&year=2025", nil)
		c.Set("business_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("malformed is_paid filter is rejected", func(t *testing.T) {
		called := false
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context, bid string, filter salary.QueryFilter) ([]salary.SalaryResponse, error) {
				called = true
				return []salary.SalaryResponse{}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/salaries?is_paid=tru", nil)
		c.Set("business_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestSalaryHandler_SetPaid(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeSalaryService{
			setPaidFn: func(ctx context.Context, bid, aid, id string, req salary.SetPaidRequest) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{}, salaryerrors.ErrSalaryNotFound
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/salaries/x/payment", strings.NewReader(`{"is_paid":true,"payment_method":"CASH"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("business_id", uuid.New().String())
		c.Set("user_id", uuid.New().String())

		h.SetPaid(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
