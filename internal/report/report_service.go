package report

import (
	"context"
	"encoding/json"
	"time"

	reporterrors "go-payledger/internal/report/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	monthlyKeyPrefix = "reports:monthly:"
	monthlyCacheTTL  = 15 * time.Minute
)

func MonthlyKey(businessID string, month, year int) string {
	return monthlyKeyPrefix + businessID + ":" + time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, businessID string, month, year int) (MonthlySummaryResponse, error)
	RefreshMonth(ctx context.Context, businessID string, month, year int) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) MonthlySummary(ctx context.Context, businessID string, month, year int) (MonthlySummaryResponse, error) {
	if _, err := uuid.Parse(businessID); err != nil {
		return MonthlySummaryResponse{}, reporterrors.ErrInvalidBusinessID
	}
	if month < 0 || month > 11 || year < 2000 || year > 2100 {
		return MonthlySummaryResponse{}, reporterrors.ErrInvalidPeriod
	}

	key := MonthlyKey(businessID, month, year)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp MonthlySummaryResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			return resp, nil
		}
	}

	// Singleflight keeps a cold cache from fanning the three aggregate
	// queries out once per concurrent caller.
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		resp, err := s.build(ctx, businessID, month, year)
		if err != nil {
			return MonthlySummaryResponse{}, err
		}
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, string(data), monthlyCacheTTL).Err(); err != nil {
				s.logger.Warn("monthly report cache write failed",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
		return resp, nil
	})
	if err != nil {
		return MonthlySummaryResponse{}, err
	}
	return v.(MonthlySummaryResponse), nil
}

// RefreshMonth drops and rebuilds the cached summary. The salary.calculated
// consumer calls this so dashboards see new calculations before the TTL
// would have expired.
func (s *service) RefreshMonth(ctx context.Context, businessID string, month, year int) error {
	if _, err := uuid.Parse(businessID); err != nil {
		return reporterrors.ErrInvalidBusinessID
	}
	if month < 0 || month > 11 || year < 2000 || year > 2100 {
		return reporterrors.ErrInvalidPeriod
	}

	key := MonthlyKey(businessID, month, year)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("monthly report cache invalidation failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	resp, err := s.build(ctx, businessID, month, year)
	if err != nil {
		return err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, string(data), monthlyCacheTTL).Err(); err != nil {
		s.logger.Warn("monthly report cache warm failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return nil
}

func (s *service) build(ctx context.Context, businessID string, month, year int) (MonthlySummaryResponse, error) {
	periodStart := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	payroll, err := s.repo.PayrollTotals(ctx, businessID, month, year)
	if err != nil {
		s.logger.Error("monthly report payroll totals failed", zap.Error(err))
		return MonthlySummaryResponse{}, err
	}
	liabilities, err := s.repo.LiabilityTotals(ctx, businessID, periodStart, periodEnd)
	if err != nil {
		s.logger.Error("monthly report liability totals failed", zap.Error(err))
		return MonthlySummaryResponse{}, err
	}
	attendance, err := s.repo.AttendanceCounts(ctx, businessID, periodStart, periodEnd)
	if err != nil {
		s.logger.Error("monthly report attendance counts failed", zap.Error(err))
		return MonthlySummaryResponse{}, err
	}

	return MonthlySummaryResponse{
		BusinessID: businessID,
		Month:      month,
		Year:       year,
		Payroll: PayrollSummary{
			RecordsTotal: payroll.RecordsTotal,
			RecordsPaid:  payroll.RecordsPaid,
			PaidNet:      payroll.PaidNet.StringFixed(2),
			PendingNet:   payroll.PendingNet.StringFixed(2),
			GrossTotal:   payroll.GrossTotal.StringFixed(2),
		},
		Liability: LiabilitySummary{
			AdvancesGranted: liabilities.AdvancesGranted,
			AdvancesAmount:  liabilities.AdvancesAmount.StringFixed(2),
			LoansGranted:    liabilities.LoansGranted,
			LoansAmount:     liabilities.LoansAmount.StringFixed(2),
		},
		Attendance: AttendanceSummary{
			PresentDays: attendance.PresentDays,
			AbsentDays:  attendance.AbsentDays,
			LeaveDays:   attendance.LeaveDays,
			HalfDays:    attendance.HalfDays,
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
