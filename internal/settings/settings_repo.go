package settings

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByBusiness(ctx context.Context, businessID string) (*BusinessSettings, error)
	Upsert(ctx context.Context, row *BusinessSettings) error
	Save(ctx context.Context, row *BusinessSettings) error
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

func (r *repository) FindByBusiness(ctx context.Context, businessID string) (*BusinessSettings, error) {
	var row BusinessSettings
	err := r.db.WithContext(ctx).
		First(&row, "business_id = ?", businessID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert handles the race where two first reads both try to create the
// default row: the loser keeps the winner's row untouched.
func (r *repository) Upsert(ctx context.Context, row *BusinessSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *repository) Save(ctx context.Context, row *BusinessSettings) error {
	return r.db.WithContext(ctx).Save(row).Error
}
