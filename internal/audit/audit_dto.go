package audit

import (
	"encoding/json"
	"time"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	EntityKind string          `json:"entity_kind"`
	Operation  string          `json:"operation"`
	EntityID   string          `json:"entity_id"`
	ActorID    string          `json:"actor_id"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	RecordedAt string          `json:"recorded_at"`
}

func mapToResponse(row AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         row.ID.String(),
		BusinessID: row.BusinessID.String(),
		EntityKind: row.EntityKind,
		Operation:  row.Operation,
		EntityID:   row.EntityID.String(),
		ActorID:    row.ActorID.String(),
		Before:     row.Before,
		After:      row.After,
		RecordedAt: row.RecordedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(rows []AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
