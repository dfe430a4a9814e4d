package audit

import (
	"context"

	"go-payledger/internal/tenant"

	"gorm.io/gorm"
)

type QueryFilter struct {
	EntityKind string
	EntityID   string
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, entry *AuditLog) error
	FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAllByBusiness(ctx context.Context, businessID string, filter QueryFilter) ([]AuditLog, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(businessID))

	if filter.EntityKind != "" {
		db = db.Where("entity_kind = ?", filter.EntityKind)
	}
	if filter.EntityID != "" {
		db = db.Where("entity_id = ?", filter.EntityID)
	}

	var rows []AuditLog
	err := db.Order("recorded_at ASC, id ASC").Find(&rows).Error
	return rows, err
}
