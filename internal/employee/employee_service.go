package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payledger/internal/audit"
	employeeerrors "go-payledger/internal/employee/errors"
	"go-payledger/internal/shared/contextutil"
	"go-payledger/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsKeyPrefix = "employees:options:"

func GetOptionsKey(businessID string) string {
	return OptionsKeyPrefix + businessID
}

// defaultOvertimeFactor applies when no overtime rate is given: 1.5x the
// hourly rate, matching how most small businesses quote overtime.
var defaultOvertimeFactor = decimal.NewFromFloat(1.5)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, businessID, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, businessID string, activeOnly bool) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, businessID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, businessID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, businessID, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, businessID, actorID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	recorder audit.Recorder
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	recorder audit.Recorder,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		recorder: recorder,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(
	ctx context.Context,
	businessID, actorID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("business_id", businessID),
	)

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBusinessID
	}

	hourly, overtime, err := parseRates(req.HourlyRate, req.OvertimeRate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, businessID, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		BusinessID:     businessUUID,
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Position:       req.Position,
		Department:     req.Department,
		HourlyRate:     hourly,
		OvertimeRate:   overtime,
		HireDate:       hireDate,
		LifecycleState: LifecycleActive,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Employee",
		Operation:  audit.OpCreate,
		EntityID:   empl.ID.String(),
		ActorID:    actorID,
		After:      empl,
	})

	s.invalidateOptionsCache(ctx, businessID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	businessID string,
	activeOnly bool,
) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAllByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context, businessID string) ([]EmployeeResponse, error) {
	cacheKey := GetOptionsKey(businessID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a cold cache from hammering the database when the
	// payroll screen loads for every manager at once.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllByBusiness(ctx, businessID, true)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	businessID, id string,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	businessID, actorID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("business_id", businessID),
		zap.String("employee_id", id),
	)

	hourly, overtime, err := parseRates(req.HourlyRate, req.OvertimeRate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	before := *empl

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Position = req.Position
	empl.Department = req.Department
	empl.HourlyRate = hourly
	empl.OvertimeRate = overtime

	if req.IsActive != nil {
		if !*req.IsActive && empl.LifecycleState == LifecycleActive {
			now := time.Now().UTC()
			empl.LifecycleState = LifecycleInactive
			empl.EndDate = &now
		} else if *req.IsActive && empl.LifecycleState == LifecycleInactive {
			empl.LifecycleState = LifecycleActive
			empl.EndDate = nil
		}
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Employee",
		Operation:  audit.OpUpdate,
		EntityID:   id,
		ActorID:    actorID,
		Before:     before,
		After:      empl,
	})

	s.invalidateOptionsCache(ctx, businessID)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// Deactivate is the soft delete: the row stays, lifecycle_state flips and
// end_date is stamped.
func (s *service) Deactivate(
	ctx context.Context,
	businessID, actorID, id string,
) error {
	s.logger.Debug("deactivate employee requested",
		zap.String("business_id", businessID),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deactivate employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	before := *empl

	now := time.Now().UTC()
	empl.LifecycleState = LifecycleInactive
	empl.EndDate = &now

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("deactivate employee persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate employee commit failed", zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Employee",
		Operation:  audit.OpUpdate,
		EntityID:   id,
		ActorID:    actorID,
		Before:     before,
		After:      empl,
	})

	s.invalidateOptionsCache(ctx, businessID)

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, businessID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetOptionsKey(businessID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func parseRates(hourlyRaw string, overtimeRaw *string) (decimal.Decimal, decimal.Decimal, error) {
	hourly, err := decimal.NewFromString(hourlyRaw)
	if err != nil || hourly.IsNegative() {
		return decimal.Decimal{}, decimal.Decimal{}, employeeerrors.ErrInvalidRate
	}

	overtime := hourly.Mul(defaultOvertimeFactor).Round(2)
	if overtimeRaw != nil && *overtimeRaw != "" {
		overtime, err = decimal.NewFromString(*overtimeRaw)
		if err != nil || overtime.IsNegative() {
			return decimal.Decimal{}, decimal.Decimal{}, employeeerrors.ErrInvalidRate
		}
	}

	return hourly.Round(2), overtime.Round(2), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		BusinessID:     empl.BusinessID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		Position:       empl.Position,
		Department:     empl.Department,
		HourlyRate:     empl.HourlyRate.StringFixed(2),
		OvertimeRate:   empl.OvertimeRate.StringFixed(2),
		HireDate:       empl.HireDate.Format("2006-01-02"),
		LifecycleState: empl.LifecycleState,
	}
	if empl.EndDate != nil {
		v := empl.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
