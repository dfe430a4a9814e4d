package settings_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payledger/internal/audit"
	"go-payledger/internal/settings"
	settingserrors "go-payledger/internal/settings/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSettingsRepository struct {
	findByBusinessFn func(ctx context.Context, businessID string) (*settings.BusinessSettings, error)
	upsertFn         func(ctx context.Context, row *settings.BusinessSettings) error
	saveFn           func(ctx context.Context, row *settings.BusinessSettings) error
}

func (f *fakeSettingsRepository) WithTx(tx *sql.Tx) settings.Repository {
	return f
}

func (f *fakeSettingsRepository) FindByBusiness(ctx context.Context, businessID string) (*settings.BusinessSettings, error) {
	if f.findByBusinessFn != nil {
		return f.findByBusinessFn(ctx, businessID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepository) Upsert(ctx context.Context, row *settings.BusinessSettings) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, row)
	}
	return nil
}

func (f *fakeSettingsRepository) Save(ctx context.Context, row *settings.BusinessSettings) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, row)
	}
	return nil
}

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, e audit.Entry) {
	f.entries = append(f.entries, e)
}

func existing(businessID uuid.UUID) *settings.BusinessSettings {
	return &settings.BusinessSettings{
		ID:                 uuid.New(),
		BusinessID:         businessID,
		BusinessName:       "Warung Kita",
		RegularHoursPerDay: 8,
		WorkingDaysPerWeek: 6,
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
		SalaryPeriod:       settings.PeriodMonthly,
		PaymentDay:         1,
		AutoCalculate:      true,
	}
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	t.Run("creates defaults on first read", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		var created *settings.BusinessSettings
		calls := 0
		repo := &fakeSettingsRepository{
			findByBusinessFn: func(ctx context.Context, bid string) (*settings.BusinessSettings, error) {
				calls++
				if calls == 1 {
					return nil, gorm.ErrRecordNotFound
				}
				return created, nil
			},
			upsertFn: func(ctx context.Context, row *settings.BusinessSettings) error {
				created = row
				return nil
			},
		}

		svc := settings.NewService(db, repo, &fakeRecorder{})

		resp, err := svc.Get(ctx, businessID.String())
		assert.NoError(t, err)
		assert.Equal(t, "My Business", resp.BusinessName)
		assert.Equal(t, 8, resp.RegularHoursPerDay)
		assert.Equal(t, 6, resp.WorkingDaysPerWeek)
		assert.Equal(t, "1.50", resp.OvertimeMultiplier)
		assert.True(t, resp.AutoCalculate)
	})

	t.Run("invalid business id", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := settings.NewService(db, &fakeSettingsRepository{}, &fakeRecorder{})

		_, err = svc.Get(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, settingserrors.ErrInvalidBusinessID)
	})
}

func TestSettingsService_WorkingRules(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	row := existing(businessID)
	row.RegularHoursPerDay = 7
	repo := &fakeSettingsRepository{
		findByBusinessFn: func(ctx context.Context, bid string) (*settings.BusinessSettings, error) {
			return row, nil
		},
	}

	svc := settings.NewService(db, repo, &fakeRecorder{})

	rules, err := svc.WorkingRules(ctx, businessID.String())
	assert.NoError(t, err)
	assert.Equal(t, 7, rules.RegularHoursPerDay)
	assert.True(t, rules.OvertimeMultiplier.Equal(decimal.NewFromFloat(1.5)))
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	actorID := uuid.New().String()

	t.Run("success records audit with before and after", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		row := existing(businessID)
		repo := &fakeSettingsRepository{
			findByBusinessFn: func(ctx context.Context, bid string) (*settings.BusinessSettings, error) {
				return row, nil
			},
		}
		recorder := &fakeRecorder{}
		svc := settings.NewService(db, repo, recorder)

		hours := 9
		mult := "2.00"
		resp, err := svc.Update(ctx, businessID.String(), actorID, settings.UpdateSettingsRequest{
			BusinessName:       "Warung Baru",
			RegularHoursPerDay: &hours,
			OvertimeMultiplier: &mult,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Warung Baru", resp.BusinessName)
		assert.Equal(t, 9, resp.RegularHoursPerDay)
		assert.Equal(t, "2.00", resp.OvertimeMultiplier)

		assert.Len(t, recorder.entries, 1)
		assert.Equal(t, "BusinessSettings", recorder.entries[0].EntityKind)
		assert.Equal(t, audit.OpUpdate, recorder.entries[0].Operation)
		assert.NotNil(t, recorder.entries[0].Before)
	})

	t.Run("rejects out of range working hours", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		row := existing(businessID)
		repo := &fakeSettingsRepository{
			findByBusinessFn: func(ctx context.Context, bid string) (*settings.BusinessSettings, error) {
				return row, nil
			},
		}
		svc := settings.NewService(db, repo, &fakeRecorder{})

		hours := 25
		_, err = svc.Update(ctx, businessID.String(), actorID, settings.UpdateSettingsRequest{
			BusinessName:       "Warung Kita",
			RegularHoursPerDay: &hours,
		})

		assert.ErrorIs(t, err, settingserrors.ErrInvalidWorkingHours)
	})

	t.Run("rejects overtime multiplier below one", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		row := existing(businessID)
		repo := &fakeSettingsRepository{
			findByBusinessFn: func(ctx context.Context, bid string) (*settings.BusinessSettings, error) {
				return row, nil
			},
		}
		svc := settings.NewService(db, repo, &fakeRecorder{})

		mult := "0.5"
		_, err = svc.Update(ctx, businessID.String(), actorID, settings.UpdateSettingsRequest{
			BusinessName:       "Warung Kita",
			OvertimeMultiplier: &mult,
		})

		assert.ErrorIs(t, err, settingserrors.ErrInvalidOvertimeMultiplier)
	})
}
