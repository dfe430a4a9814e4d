package employee

import (
	"context"
	"database/sql"

	"go-payledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]Employee, error)
	FindByIDAndBusiness(ctx context.Context, businessID string, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAllByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID))

	if activeOnly {
		db = db.Where("lifecycle_state = ?", LifecycleActive)
	}

	var rows []Employee
	err := db.Order("last_name ASC, first_name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndBusiness(ctx context.Context, businessID string, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
