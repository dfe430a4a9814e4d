package salary

import (
	"context"
	"database/sql"

	"go-payledger/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayProfile is the slice of the employee row payroll needs: the rates and
// the lifecycle gate.
type PayProfile struct {
	EmployeeID   string
	HourlyRate   decimal.Decimal
	OvertimeRate decimal.Decimal
	Active       bool
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	Update(ctx context.Context, record *SalaryRecord) error
	FindByIDAndBusiness(ctx context.Context, businessID, id string) (*SalaryRecord, error)
	FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]SalaryRecord, error)
	ExistsForPeriod(ctx context.Context, businessID, employeeID string, month, year int) (bool, error)
	EmployeePayProfile(ctx context.Context, businessID, employeeID string) (*PayProfile, error)
}

// QueryFilter narrows the salary listing; zero values mean no filter.
type QueryFilter struct {
	EmployeeID string
	Month      *int
	Year       *int
	IsPaid     *bool
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session onto the caller's transaction. Every
// statement issued through the returned repository joins that transaction;
// gorm skips its per-statement transaction once the conn pool is a *sql.Tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) FindByIDAndBusiness(ctx context.Context, businessID, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]SalaryRecord, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID))

	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month != nil {
		db = db.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		db = db.Where("year = ?", *filter.Year)
	}
	if filter.IsPaid != nil {
		db = db.Where("is_paid = ?", *filter.IsPaid)
	}

	var rows []SalaryRecord
	err := db.Order("year DESC, month DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, businessID, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

// EmployeePayProfile reads the employees table directly; payroll does not
// depend on the employee package for a two-column lookup.
func (r *repository) EmployeePayProfile(ctx context.Context, businessID, employeeID string) (*PayProfile, error) {
	var row struct {
		ID             string
		HourlyRate     decimal.Decimal
		OvertimeRate   decimal.Decimal
		LifecycleState string
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, hourly_rate, overtime_rate, lifecycle_state").
		Scopes(tenant.Scope(businessID)).
		Where("id = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &PayProfile{
		EmployeeID:   row.ID,
		HourlyRate:   row.HourlyRate,
		OvertimeRate: row.OvertimeRate,
		Active:       row.LifecycleState == "ACTIVE",
	}, nil
}
