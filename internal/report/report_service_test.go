package report_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-payledger/internal/report"
	reporterrors "go-payledger/internal/report/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	payrollCalls    int
	liabilityCalls  int
	attendanceCalls int

	payroll    report.PayrollTotals
	liability  report.LiabilityTotals
	attendance report.AttendanceCounts
}

func (f *fakeReportRepository) PayrollTotals(ctx context.Context, businessID string, month, year int) (report.PayrollTotals, error) {
	f.payrollCalls++
	return f.payroll, nil
}

func (f *fakeReportRepository) LiabilityTotals(ctx context.Context, businessID string, start, end time.Time) (report.LiabilityTotals, error) {
	f.liabilityCalls++
	return f.liability, nil
}

func (f *fakeReportRepository) AttendanceCounts(ctx context.Context, businessID string, start, end time.Time) (report.AttendanceCounts, error) {
	f.attendanceCalls++
	return f.attendance, nil
}

func TestReportService_MonthlySummary(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New().String()

	repo := &fakeReportRepository{
		payroll: report.PayrollTotals{
			RecordsTotal: 8,
			RecordsPaid:  5,
			PaidNet:      decimal.RequireFromString("14750.00"),
			PendingNet:   decimal.RequireFromString("8900.50"),
			GrossTotal:   decimal.RequireFromString("26400.00"),
		},
		liability: report.LiabilityTotals{
			AdvancesGranted: 2,
			AdvancesAmount:  decimal.RequireFromString("600.00"),
			LoansGranted:    1,
			LoansAmount:     decimal.RequireFromString("2400.00"),
		},
		attendance: report.AttendanceCounts{
			PresentDays: 160,
			AbsentDays:  4,
			LeaveDays:   6,
			HalfDays:    2,
		},
	}

	t.Run("cold cache builds and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb)

		key := report.MonthlyKey(businessID, 6, 2025)
		mock.ExpectGet(key).RedisNil()
		mock.Regexp().ExpectSet(key, `.*"paidNet":"14750\.00".*`, 15*time.Minute).SetVal("OK")

		resp, err := svc.MonthlySummary(ctx, businessID, 6, 2025)

		assert.NoError(t, err)
		assert.Equal(t, 6, resp.Month)
		assert.Equal(t, "14750.00", resp.Payroll.PaidNet)
		assert.Equal(t, "8900.50", resp.Payroll.PendingNet)
		assert.Equal(t, "600.00", resp.Liability.AdvancesAmount)
		assert.Equal(t, 160, resp.Attendance.PresentDays)
		assert.Equal(t, 1, repo.payrollCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("warm cache skips the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb)

		cached := report.MonthlySummaryResponse{
			BusinessID: businessID,
			Month:      3,
			Year:       2025,
			Payroll:    report.PayrollSummary{RecordsTotal: 2, PaidNet: "1000.00", PendingNet: "0.00", GrossTotal: "1000.00"},
		}
		data, err := json.Marshal(cached)
		assert.NoError(t, err)

		before := repo.payrollCalls
		mock.ExpectGet(report.MonthlyKey(businessID, 3, 2025)).SetVal(string(data))

		resp, err := svc.MonthlySummary(ctx, businessID, 3, 2025)

		assert.NoError(t, err)
		assert.Equal(t, "1000.00", resp.Payroll.PaidNet)
		assert.Equal(t, before, repo.payrollCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("month out of range rejected", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		svc := report.NewService(repo, rdb)

		_, err := svc.MonthlySummary(ctx, businessID, 12, 2025)
		assert.ErrorIs(t, err, reporterrors.ErrInvalidPeriod)
	})

	t.Run("invalid business id rejected", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		svc := report.NewService(repo, rdb)

		_, err := svc.MonthlySummary(ctx, "not-a-uuid", 3, 2025)
		assert.ErrorIs(t, err, reporterrors.ErrInvalidBusinessID)
	})
}

func TestReportService_RefreshMonth(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New().String()

	repo := &fakeReportRepository{
		payroll: report.PayrollTotals{
			RecordsTotal: 1,
			RecordsPaid:  0,
			PaidNet:      decimal.Zero,
			PendingNet:   decimal.RequireFromString("3200.00"),
			GrossTotal:   decimal.RequireFromString("3200.00"),
		},
	}

	rdb, mock := redismock.NewClientMock()
	svc := report.NewService(repo, rdb)

	key := report.MonthlyKey(businessID, 0, 2026)
	mock.ExpectDel(key).SetVal(1)
	mock.Regexp().ExpectSet(key, `.*"pendingNet":"3200\.00".*`, 15*time.Minute).SetVal("OK")

	err := svc.RefreshMonth(ctx, businessID, 0, 2026)

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.payrollCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
