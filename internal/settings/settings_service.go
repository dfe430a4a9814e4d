package settings

import (
	"context"
	"database/sql"
	"errors"

	"go-payledger/internal/audit"
	settingserrors "go-payledger/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkingRules is the subset of settings other domains care about when
// splitting worked hours into regular and overtime.
type WorkingRules struct {
	RegularHoursPerDay int
	WorkingDaysPerWeek int
	OvertimeMultiplier decimal.Decimal
}

// Provider is what attendance and salary consume; they never need the full
// settings surface.
type Provider interface {
	WorkingRules(ctx context.Context, businessID string) (WorkingRules, error)
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Provider
	Get(ctx context.Context, businessID string) (SettingsResponse, error)
	Update(ctx context.Context, businessID, actorID string, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) Get(ctx context.Context, businessID string) (SettingsResponse, error) {
	row, err := s.getOrCreate(ctx, businessID)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) WorkingRules(ctx context.Context, businessID string) (WorkingRules, error) {
	row, err := s.getOrCreate(ctx, businessID)
	if err != nil {
		return WorkingRules{}, err
	}
	return WorkingRules{
		RegularHoursPerDay: row.RegularHoursPerDay,
		WorkingDaysPerWeek: row.WorkingDaysPerWeek,
		OvertimeMultiplier: row.OvertimeMultiplier,
	}, nil
}

func (s *service) getOrCreate(ctx context.Context, businessID string) (*BusinessSettings, error) {
	row, err := s.repo.FindByBusiness(ctx, businessID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, err
	}

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, settingserrors.ErrInvalidBusinessID
	}

	fresh := defaults(businessUUID)
	if err := s.repo.Upsert(ctx, fresh); err != nil {
		s.logger.Error("create default settings failed", zap.Error(err))
		return nil, err
	}

	// Re-read in case a concurrent request created the row first.
	return s.repo.FindByBusiness(ctx, businessID)
}

func (s *service) Update(
	ctx context.Context,
	businessID, actorID string,
	req UpdateSettingsRequest,
) (SettingsResponse, error) {
	s.logger.Debug("update settings requested", zap.String("business_id", businessID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update settings begin tx failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.getOrCreateTx(ctx, qtx, businessID)
	if err != nil {
		return SettingsResponse{}, err
	}

	before := *row

	row.BusinessName = req.BusinessName
	if req.RegularHoursPerDay != nil {
		if *req.RegularHoursPerDay < 1 || *req.RegularHoursPerDay > 24 {
			return SettingsResponse{}, settingserrors.ErrInvalidWorkingHours
		}
		row.RegularHoursPerDay = *req.RegularHoursPerDay
	}
	if req.WorkingDaysPerWeek != nil {
		if *req.WorkingDaysPerWeek < 1 || *req.WorkingDaysPerWeek > 7 {
			return SettingsResponse{}, settingserrors.ErrInvalidWorkingDays
		}
		row.WorkingDaysPerWeek = *req.WorkingDaysPerWeek
	}
	if req.OvertimeMultiplier != nil {
		mult, err := decimal.NewFromString(*req.OvertimeMultiplier)
		if err != nil || mult.LessThan(decimal.NewFromInt(1)) {
			return SettingsResponse{}, settingserrors.ErrInvalidOvertimeMultiplier
		}
		row.OvertimeMultiplier = mult
	}
	if req.SalaryPeriod != nil {
		row.SalaryPeriod = *req.SalaryPeriod
	}
	if req.PaymentDay != nil {
		if *req.PaymentDay < 1 || *req.PaymentDay > 28 {
			return SettingsResponse{}, settingserrors.ErrInvalidPaymentDay
		}
		row.PaymentDay = *req.PaymentDay
	}
	if req.AutoCalculate != nil {
		row.AutoCalculate = *req.AutoCalculate
	}
	if req.NotifyByEmail != nil {
		row.NotifyByEmail = *req.NotifyByEmail
	}
	if req.NotifyOnAbsence != nil {
		row.NotifyOnAbsence = *req.NotifyOnAbsence
	}
	if req.NotifyBeforePayday != nil {
		row.NotifyBeforePayday = *req.NotifyBeforePayday
	}

	if err := qtx.Save(ctx, row); err != nil {
		s.logger.Error("update settings persist failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update settings commit failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "BusinessSettings",
		Operation:  audit.OpUpdate,
		EntityID:   row.ID.String(),
		ActorID:    actorID,
		Before:     before,
		After:      row,
	})

	s.logger.Info("update settings success", zap.String("business_id", businessID))
	return mapToResponse(*row), nil
}

func (s *service) getOrCreateTx(ctx context.Context, repo Repository, businessID string) (*BusinessSettings, error) {
	row, err := repo.FindByBusiness(ctx, businessID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, settingserrors.ErrInvalidBusinessID
	}

	fresh := defaults(businessUUID)
	if err := repo.Upsert(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func mapToResponse(row BusinessSettings) SettingsResponse {
	return SettingsResponse{
		BusinessID:         row.BusinessID.String(),
		BusinessName:       row.BusinessName,
		RegularHoursPerDay: row.RegularHoursPerDay,
		WorkingDaysPerWeek: row.WorkingDaysPerWeek,
		OvertimeMultiplier: row.OvertimeMultiplier.StringFixed(2),
		SalaryPeriod:       row.SalaryPeriod,
		PaymentDay:         row.PaymentDay,
		AutoCalculate:      row.AutoCalculate,
		NotifyByEmail:      row.NotifyByEmail,
		NotifyOnAbsence:    row.NotifyOnAbsence,
		NotifyBeforePayday: row.NotifyBeforePayday,
	}
}
