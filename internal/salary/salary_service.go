package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payledger/internal/attendance"
	"go-payledger/internal/audit"
	"go-payledger/internal/events"
	"go-payledger/internal/liability"
	"go-payledger/internal/messaging/kafka"
	salaryerrors "go-payledger/internal/salary/errors"
	"go-payledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, businessID, actorID, employeeID string, req CalculateSalaryRequest) (SalaryResponse, error)
	SetPaid(ctx context.Context, businessID, actorID, id string, req SetPaidRequest) (SalaryResponse, error)
	GetAll(ctx context.Context, businessID string, filter QueryFilter) ([]SalaryResponse, error)
	GetByID(ctx context.Context, businessID, id string) (SalaryResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	aggregator attendance.Aggregator
	ledger     liability.Ledger
	outbox     kafka.OutboxRepository
	recorder   audit.Recorder
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	aggregator attendance.Aggregator,
	ledger liability.Ledger,
	outbox kafka.OutboxRepository,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		aggregator: aggregator,
		ledger:     ledger,
		outbox:     outbox,
		recorder:   recorder,
		logger:     l,
	}
}

// Calculate runs one payroll calculation for (employee, month, year). Month
// is zero-based. The salary insert, every liability mutation and the staged
// event share one transaction; the unique period index is the final word on
// at-most-once even when two callers race past the pre-check.
func (s *service) Calculate(
	ctx context.Context,
	businessID, actorID, employeeID string,
	req CalculateSalaryRequest,
) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("calculate salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if req.Month < 0 || req.Month > 11 || req.Year < 2000 || req.Year > 2100 {
		return SalaryResponse{}, salaryerrors.ErrInvalidPeriod
	}
	// A malformed id cannot name an employee; reject it before it reaches
	// the uuid-typed column.
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
	}

	deductionOther := decimal.Zero
	if req.DeductionOther != nil && *req.DeductionOther != "" {
		var err error
		deductionOther, err = decimal.NewFromString(*req.DeductionOther)
		if err != nil || deductionOther.IsNegative() {
			return SalaryResponse{}, salaryerrors.ErrInvalidDeduction
		}
	}

	profile, err := s.repo.EmployeePayProfile(ctx, businessID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
		}
		return SalaryResponse{}, err
	}

	exists, err := s.repo.ExistsForPeriod(ctx, businessID, employeeID, req.Month, req.Year)
	if err != nil {
		return SalaryResponse{}, err
	}
	if exists {
		return SalaryResponse{}, salaryerrors.ErrDuplicatePeriod
	}

	periodStart := time.Date(req.Year, time.Month(req.Month+1), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	summary, err := s.aggregator.AggregatePeriod(ctx, businessID, employeeID, periodStart, periodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("calculate salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	resolution, err := s.ledger.ResolvePeriod(ctx, tx, businessID, employeeID, periodStart, periodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}

	gross := summary.RegularHours.Mul(profile.HourlyRate).
		Add(summary.OvertimeHours.Mul(profile.OvertimeRate)).
		Round(2)

	// Net is allowed to go negative: deductions can exceed a thin month's
	// gross and the business settles the difference outside payroll.
	net := gross.
		Sub(resolution.AdvanceDeduction).
		Sub(resolution.LoanDeduction).
		Sub(deductionOther).
		Round(2)

	record := &SalaryRecord{
		ID:                uuid.New(),
		BusinessID:        uuid.MustParse(businessID),
		EmployeeID:        uuid.MustParse(employeeID),
		Month:             req.Month,
		Year:              req.Year,
		DaysWorked:        summary.DaysWorked,
		TotalWorkingDays:  summary.TotalCalendarDays,
		RegularHours:      summary.RegularHours,
		OvertimeHours:     summary.OvertimeHours,
		HourlyRate:        profile.HourlyRate,
		OvertimeRate:      profile.OvertimeRate,
		GrossSalary:       gross,
		DeductionAdvances: resolution.AdvanceDeduction,
		DeductionLoans:    resolution.LoanDeduction,
		DeductionOther:    deductionOther,
		NetSalary:         net,
		IsPaid:            false,
		CreatedBy:         uuid.MustParse(actorID),
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Warn("calculate salary insert failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := s.stageCalculatedEvent(ctx, tx, rid, record); err != nil {
		s.logger.Error("stage salary.calculated failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("calculate salary commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "SalaryRecord",
		Operation:  audit.OpCreate,
		EntityID:   record.ID.String(),
		ActorID:    actorID,
		After:      record,
	})
	for _, touched := range resolution.Touched {
		s.recorder.Record(ctx, audit.Entry{
			BusinessID: businessID,
			EntityKind: "Liability",
			Operation:  audit.OpUpdate,
			EntityID:   touched.After.ID.String(),
			ActorID:    actorID,
			Before:     touched.Before,
			After:      touched.After,
		})
	}

	s.logger.Info("calculate salary success",
		zap.String("request_id", rid),
		zap.String("salary_id", record.ID.String()),
		zap.String("gross", gross.StringFixed(2)),
		zap.String("net", net.StringFixed(2)),
		zap.Int("liabilities_touched", len(resolution.Touched)),
	)

	return mapToResponse(*record), nil
}

// SetPaid toggles settlement. Paying stamps date and method; unpaying clears
// both, it reverses a bookkeeping mistake rather than recording a new
// financial event.
func (s *service) SetPaid(
	ctx context.Context,
	businessID, actorID, id string,
	req SetPaidRequest,
) (SalaryResponse, error) {
	if req.IsPaid {
		if req.PaymentMethod == nil || !ValidPaymentMethod(*req.PaymentMethod) {
			return SalaryResponse{}, salaryerrors.ErrInvalidPaymentMethod
		}
	}
	if _, err := uuid.Parse(id); err != nil {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}

	before := *record
	becomingPaid := req.IsPaid && !record.IsPaid

	if req.IsPaid {
		now := time.Now().UTC()
		record.IsPaid = true
		record.PaymentDate = &now
		record.PaymentMethod = req.PaymentMethod
	} else {
		record.IsPaid = false
		record.PaymentDate = nil
		record.PaymentMethod = nil
	}

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("set paid persist failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if becomingPaid {
		if err := s.stagePaidEvent(ctx, tx, contextutil.GetRequestID(ctx), record); err != nil {
			s.logger.Error("stage salary.paid failed", zap.Error(err))
			return SalaryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "SalaryRecord",
		Operation:  audit.OpUpdate,
		EntityID:   id,
		ActorID:    actorID,
		Before:     before,
		After:      record,
	})

	s.logger.Info("set paid",
		zap.String("salary_id", id),
		zap.Bool("is_paid", record.IsPaid),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, businessID string, filter QueryFilter) ([]SalaryResponse, error) {
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, salaryerrors.ErrEmployeeNotFound
		}
	}
	rows, err := s.repo.FindAllByBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]SalaryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, businessID, id string) (SalaryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}
	record, err := s.repo.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) stageCalculatedEvent(ctx context.Context, tx *sql.Tx, requestID string, record *SalaryRecord) error {
	event := events.SalaryCalculatedEvent{
		EventType:        "salary.calculated",
		SalaryRecordID:   record.ID.String(),
		BusinessID:       record.BusinessID.String(),
		EmployeeID:       record.EmployeeID.String(),
		Month:            record.Month,
		Year:             record.Year,
		GrossSalary:      record.GrossSalary.StringFixed(2),
		NetSalary:        record.NetSalary.StringFixed(2),
		AdvanceDeduction: record.DeductionAdvances.StringFixed(2),
		LoanDeduction:    record.DeductionLoans.StringFixed(2),
		OccurredAt:       time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "SalaryRecord",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SalaryCalculatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) stagePaidEvent(ctx context.Context, tx *sql.Tx, requestID string, record *SalaryRecord) error {
	method := ""
	if record.PaymentMethod != nil {
		method = *record.PaymentMethod
	}
	event := events.SalaryPaidEvent{
		EventType:      "salary.paid",
		SalaryRecordID: record.ID.String(),
		BusinessID:     record.BusinessID.String(),
		EmployeeID:     record.EmployeeID.String(),
		Month:          record.Month,
		Year:           record.Year,
		NetSalary:      record.NetSalary.StringFixed(2),
		PaymentMethod:  method,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "SalaryRecord",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SalaryPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(r SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:                r.ID.String(),
		BusinessID:        r.BusinessID.String(),
		EmployeeID:        r.EmployeeID.String(),
		Month:             r.Month,
		Year:              r.Year,
		DaysWorked:        r.DaysWorked.StringFixed(2),
		TotalWorkingDays:  r.TotalWorkingDays,
		RegularHours:      r.RegularHours.StringFixed(2),
		OvertimeHours:     r.OvertimeHours.StringFixed(2),
		HourlyRate:        r.HourlyRate.StringFixed(2),
		OvertimeRate:      r.OvertimeRate.StringFixed(2),
		GrossSalary:       r.GrossSalary.StringFixed(2),
		DeductionAdvances: r.DeductionAdvances.StringFixed(2),
		DeductionLoans:    r.DeductionLoans.StringFixed(2),
		DeductionOther:    r.DeductionOther.StringFixed(2),
		NetSalary:         r.NetSalary.StringFixed(2),
		IsPaid:            r.IsPaid,
		PaymentMethod:     r.PaymentMethod,
	}
	if r.PaymentDate != nil {
		v := r.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	return resp
}
