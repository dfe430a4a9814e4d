package liability

import (
	"context"
	"database/sql"
	"time"

	"go-payledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=liability_repo.go -destination=mock/liability_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Liability) error
	Update(ctx context.Context, row *Liability) error
	Delete(ctx context.Context, businessID, id string) error
	FindByIDAndBusiness(ctx context.Context, businessID, id string) (*Liability, error)
	FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]Liability, error)
	FindAdvancesInWindow(ctx context.Context, businessID, employeeID string, start, end time.Time) ([]Liability, error)
	FindOpenLoans(ctx context.Context, businessID, employeeID string) ([]Liability, error)
}

// QueryFilter narrows the liability listing; zero values mean no filter.
type QueryFilter struct {
	EmployeeID string
	Kind       string
	Status     string
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session onto the caller's transaction so the
// installment advances commit or roll back with the invoking calculation.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, row *Liability) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Liability) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) Delete(ctx context.Context, businessID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Delete(&Liability{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByIDAndBusiness(ctx context.Context, businessID, id string) (*Liability, error) {
	var row Liability
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]Liability, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID))

	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Kind != "" {
		db = db.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var rows []Liability
	err := db.Order("grant_date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAdvancesInWindow(ctx context.Context, businessID, employeeID string, start, end time.Time) ([]Liability, error) {
	var rows []Liability
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ? AND kind = ?", employeeID, KindAdvance).
		Where("status IN ?", []string{StatusApproved, StatusPaid, StatusPartiallyPaid}).
		Where("grant_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// FindOpenLoans returns loans with installments outstanding, oldest first.
// Insertion order decides which loan reaches PAID first when several are
// open at once.
func (r *repository) FindOpenLoans(ctx context.Context, businessID, employeeID string) ([]Liability, error) {
	var rows []Liability
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ? AND kind = ?", employeeID, KindLoan).
		Where("status IN ?", []string{StatusApproved, StatusPartiallyPaid}).
		Where("installments_paid < installments_total").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
