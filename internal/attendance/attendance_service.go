package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payledger/internal/audit"
	attendanceerrors "go-payledger/internal/attendance/errors"
	"go-payledger/internal/settings"
	"go-payledger/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Aggregator is the read-only slice of this package that payroll consumes.
type Aggregator interface {
	AggregatePeriod(ctx context.Context, businessID, employeeID string, periodStart, periodEnd time.Time) (PeriodSummary, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Aggregator
	ClockIn(ctx context.Context, businessID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, businessID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	Create(ctx context.Context, businessID, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, businessID, actorID string, canReadAll bool) ([]AttendanceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	rules    settings.Provider
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rules settings.Provider,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, rules: rules, recorder: recorder, logger: l}
}

func (s *service) ClockIn(ctx context.Context, businessID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, businessID, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	row := &Attendance{
		ID:             uuid.New(),
		BusinessID:     uuid.MustParse(businessID),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: today,
		Status:         StatusPresent,
		ClockIn:        &now,
		HoursWorked:    decimal.Zero,
		OvertimeHours:  decimal.Zero,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("clock in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "AttendanceEntry",
		Operation:  audit.OpCreate,
		EntityID:   row.ID.String(),
		ActorID:    employeeID,
		After:      row,
	})

	s.logger.Info("clock in",
		zap.String("employee_id", employeeID),
		zap.String("date", today.Format("2006-01-02")),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, businessID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	rules, err := s.rules.WorkingRules(ctx, businessID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, businessID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoClockIn
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}
	if row.ClockIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoClockIn
	}

	before := *row

	row.ClockOut = &now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	regular, overtime := splitHours(now.Sub(*row.ClockIn), rules.RegularHoursPerDay)
	row.HoursWorked = regular
	row.OvertimeHours = overtime

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("clock out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "AttendanceEntry",
		Operation:  audit.OpUpdate,
		EntityID:   row.ID.String(),
		ActorID:    employeeID,
		Before:     before,
		After:      row,
	})

	s.logger.Info("clock out",
		zap.String("employee_id", employeeID),
		zap.String("hours_worked", row.HoursWorked.StringFixed(2)),
		zap.String("overtime_hours", row.OvertimeHours.StringFixed(2)),
	)
	return mapToResponse(*row), nil
}

// Create is the manager path: a backdated or corrected entry keyed by an
// explicit date, with hours supplied instead of derived from clocks.
func (s *service) Create(ctx context.Context, businessID, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error) {
	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	hours, err := parseHours(req.HoursWorked)
	if err != nil {
		return AttendanceResponse{}, err
	}
	overtime, err := parseHours(req.OvertimeHours)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, businessID, req.EmployeeID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrEntryExists
	}

	row := &Attendance{
		ID:             uuid.New(),
		BusinessID:     uuid.MustParse(businessID),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		AttendanceDate: date,
		Status:         req.Status,
		HoursWorked:    hours,
		OvertimeHours:  overtime,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "AttendanceEntry",
		Operation:  audit.OpCreate,
		EntityID:   row.ID.String(),
		ActorID:    actorID,
		After:      row,
	})

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, businessID, actorID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAllByBusiness(ctx, businessID)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, apperror.New(apperror.CodeInvalidInput, "invalid actor id", 400)
		}
		rows, err = s.repo.FindAllByEmployee(ctx, businessID, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) AggregatePeriod(
	ctx context.Context,
	businessID, employeeID string,
	periodStart, periodEnd time.Time,
) (PeriodSummary, error) {
	entries, err := s.repo.FindByEmployeeAndPeriod(ctx, businessID, employeeID, periodStart, periodEnd)
	if err != nil {
		s.logger.Error("aggregate period read failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PeriodSummary{}, err
	}
	return Summarize(entries, periodStart, periodEnd), nil
}

func splitHours(worked time.Duration, regularPerDay int) (decimal.Decimal, decimal.Decimal) {
	total := decimal.NewFromFloat(worked.Hours()).Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}
	limit := decimal.NewFromInt(int64(regularPerDay))
	if total.LessThanOrEqual(limit) {
		return total, decimal.Zero
	}
	return limit, total.Sub(limit)
}

func parseHours(raw *string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil || v.IsNegative() {
		return decimal.Decimal{}, attendanceerrors.ErrInvalidHours
	}
	return v.Round(2), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		BusinessID:     a.BusinessID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		HoursWorked:    a.HoursWorked.StringFixed(2),
		OvertimeHours:  a.OvertimeHours.StringFixed(2),
		Notes:          a.Notes,
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
