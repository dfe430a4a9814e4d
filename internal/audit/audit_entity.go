package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	OpCreate = "CREATE"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// AuditLog is append-only: rows are never updated or deleted.
type AuditLog struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessID uuid.UUID       `gorm:"column:business_id;type:uuid;not null;index"`
	EntityKind string          `gorm:"column:entity_kind;type:varchar(40);not null;index:idx_audit_entity"`
	Operation  string          `gorm:"column:operation;type:varchar(10);not null"`
	EntityID   uuid.UUID       `gorm:"column:entity_id;type:uuid;not null;index:idx_audit_entity"`
	ActorID    uuid.UUID       `gorm:"column:actor_id;type:uuid;not null"`
	Before     json.RawMessage `gorm:"column:before_snapshot;type:jsonb"`
	After      json.RawMessage `gorm:"column:after_snapshot;type:jsonb"`
	RecordedAt time.Time       `gorm:"column:recorded_at;not null;default:now()"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
