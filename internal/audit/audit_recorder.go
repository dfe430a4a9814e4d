package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry describes one entity mutation to be recorded.
// Before must be nil for CREATE, After must be nil for DELETE.
type Entry struct {
	BusinessID string
	EntityKind string
	Operation  string
	EntityID   string
	ActorID    string
	Before     any
	After      any
}

// Recorder appends audit entries. Record never fails the caller: the
// financial mutation has already been committed when Record runs, so a
// failed append is reported to the operator log instead of being
// propagated as an operation failure.
//
//go:generate mockgen -source=audit_recorder.go -destination=mock/audit_recorder_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type recorder struct {
	repo   Repository
	logger *zap.Logger
}

func NewRecorder(repo Repository, logger ...*zap.Logger) Recorder {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &recorder{repo: repo, logger: l}
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	row, err := buildRow(entry)
	if err != nil {
		r.logger.Error("audit entry rejected",
			zap.String("entity_kind", entry.EntityKind),
			zap.String("operation", entry.Operation),
			zap.String("entity_id", entry.EntityID),
			zap.Error(err),
		)
		return
	}

	if err := r.repo.Append(ctx, row); err != nil {
		// Operator channel: the append failed but the caller's write stands.
		r.logger.Error("audit append failed",
			zap.String("entity_kind", entry.EntityKind),
			zap.String("operation", entry.Operation),
			zap.String("entity_id", entry.EntityID),
			zap.String("actor_id", entry.ActorID),
			zap.Error(err),
		)
		return
	}

	r.logger.Debug("audit entry recorded",
		zap.String("entity_kind", entry.EntityKind),
		zap.String("operation", entry.Operation),
		zap.String("entity_id", entry.EntityID),
	)
}

func buildRow(entry Entry) (*AuditLog, error) {
	businessID, err := uuid.Parse(entry.BusinessID)
	if err != nil {
		return nil, err
	}
	entityID, err := uuid.Parse(entry.EntityID)
	if err != nil {
		return nil, err
	}
	actorID, err := uuid.Parse(entry.ActorID)
	if err != nil {
		return nil, err
	}

	row := &AuditLog{
		ID:         uuid.New(),
		BusinessID: businessID,
		EntityKind: entry.EntityKind,
		Operation:  entry.Operation,
		EntityID:   entityID,
		ActorID:    actorID,
	}

	if entry.Operation != OpCreate && entry.Before != nil {
		snap, err := json.Marshal(entry.Before)
		if err != nil {
			return nil, err
		}
		row.Before = snap
	}
	if entry.Operation != OpDelete && entry.After != nil {
		snap, err := json.Marshal(entry.After)
		if err != nil {
			return nil, err
		}
		row.After = snap
	}

	return row, nil
}
