package report

import (
	"context"
	"time"

	"go-payledger/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayrollTotals is one aggregate row over salary_records for a period.
type PayrollTotals struct {
	RecordsTotal int
	RecordsPaid  int
	PaidNet      decimal.Decimal
	PendingNet   decimal.Decimal
	GrossTotal   decimal.Decimal
}

// LiabilityTotals covers liabilities granted inside the period window,
// whatever their current status.
type LiabilityTotals struct {
	AdvancesGranted int
	AdvancesAmount  decimal.Decimal
	LoansGranted    int
	LoansAmount     decimal.Decimal
}

// AttendanceCounts is entries per status inside the period window.
type AttendanceCounts struct {
	PresentDays int
	AbsentDays  int
	LeaveDays   int
	HalfDays    int
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	PayrollTotals(ctx context.Context, businessID string, month, year int) (PayrollTotals, error)
	LiabilityTotals(ctx context.Context, businessID string, start, end time.Time) (LiabilityTotals, error)
	AttendanceCounts(ctx context.Context, businessID string, start, end time.Time) (AttendanceCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// The report reads other domains' tables directly instead of importing their
// repositories: a summary is a read model, not a participant in their flows.

func (r *repository) PayrollTotals(ctx context.Context, businessID string, month, year int) (PayrollTotals, error) {
	var row struct {
		RecordsTotal int
		RecordsPaid  int
		PaidNet      decimal.Decimal
		PendingNet   decimal.Decimal
		GrossTotal   decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("salary_records").
		Scopes(tenant.Scope(businessID)).
		Where("month = ? AND year = ?", month, year).
		Select(`COUNT(*) AS records_total,
			COUNT(*) FILTER (WHERE is_paid) AS records_paid,
			COALESCE(SUM(net_salary) FILTER (WHERE is_paid), 0) AS paid_net,
			COALESCE(SUM(net_salary) FILTER (WHERE NOT is_paid), 0) AS pending_net,
			COALESCE(SUM(gross_salary), 0) AS gross_total`).
		Scan(&row).Error
	if err != nil {
		return PayrollTotals{}, err
	}
	return PayrollTotals(row), nil
}

func (r *repository) LiabilityTotals(ctx context.Context, businessID string, start, end time.Time) (LiabilityTotals, error) {
	var row struct {
		AdvancesGranted int
		AdvancesAmount  decimal.Decimal
		LoansGranted    int
		LoansAmount     decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("liabilities").
		Scopes(tenant.Scope(businessID)).
		Where("grant_date BETWEEN ? AND ?", start, end).
		Where("status <> ?", "REJECTED").
		Select(`COUNT(*) FILTER (WHERE kind = 'ADVANCE') AS advances_granted,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'ADVANCE'), 0) AS advances_amount,
			COUNT(*) FILTER (WHERE kind = 'LOAN') AS loans_granted,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'LOAN'), 0) AS loans_amount`).
		Scan(&row).Error
	if err != nil {
		return LiabilityTotals{}, err
	}
	return LiabilityTotals(row), nil
}

func (r *repository) AttendanceCounts(ctx context.Context, businessID string, start, end time.Time) (AttendanceCounts, error) {
	var row struct {
		PresentDays int
		AbsentDays  int
		LeaveDays   int
		HalfDays    int
	}
	err := r.db.WithContext(ctx).
		Table("attendances").
		Scopes(tenant.Scope(businessID)).
		Where("attendance_date BETWEEN ? AND ?", start, end).
		Select(`COUNT(*) FILTER (WHERE status = 'PRESENT') AS present_days,
			COUNT(*) FILTER (WHERE status = 'ABSENT') AS absent_days,
			COUNT(*) FILTER (WHERE status = 'LEAVE') AS leave_days,
			COUNT(*) FILTER (WHERE status = 'HALF_DAY') AS half_days`).
		Scan(&row).Error
	if err != nil {
		return AttendanceCounts{}, err
	}
	return AttendanceCounts(row), nil
}
