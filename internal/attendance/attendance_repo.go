package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-payledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Attendance) error
	Update(ctx context.Context, row *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, businessID, employeeID string, date time.Time) (*Attendance, error)
	FindAllByBusiness(ctx context.Context, businessID string) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, businessID, employeeID string) ([]Attendance, error)
	FindByEmployeeAndPeriod(ctx context.Context, businessID, employeeID string, start, end time.Time) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, businessID, employeeID string, date time.Time) (*Attendance, error) {
	var row Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date.Format("2006-01-02")).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAllByBusiness(ctx context.Context, businessID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Order("attendance_date DESC").
		Limit(500).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, businessID, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Limit(500).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, businessID, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID)).
		Where("employee_id = ? AND attendance_date BETWEEN ? AND ?",
			employeeID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}
