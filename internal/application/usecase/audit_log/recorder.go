// Package auditlog contains the audit trail recorder and its use cases.
package auditlog

import (
	"context"
	"log/slog"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
)

// Recorder appends audit log entries on behalf of the mutating use
// cases. Recording is best-effort: a failed write is logged and never
// aborts the enclosing mutation. When the write succeeds it commits
// together with the mutation, since the repository handed to Record is
// bound to the same database transaction.
type Recorder struct{}

// NewRecorder creates a new audit Recorder instance.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one immutable audit entry describing a mutation.
// recordID may be nil for bulk or seed operations.
func (r *Recorder) Record(ctx context.Context, logs adapter.AuditLogRepository, action entity.AuditAction, tableName string, recordID *uint, projectID uint, details string) {
	entry := entity.NewAuditLog(action, tableName, recordID, projectID, details)
	if err := logs.Create(ctx, entry); err != nil {
		slog.Error("Failed to record audit entry",
			"action", string(action),
			"table", tableName,
			"project_id", projectID,
			"error", err,
		)
	}
}
