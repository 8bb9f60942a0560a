package adapter

import (
	"context"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// AuditLogRepository defines the interface for audit log data operations.
// Entries are append-only; there are no update or delete operations.
type AuditLogRepository interface {
	// Create appends a new audit log entry.
	Create(ctx context.Context, log *entity.AuditLog) error

	// FindByProject retrieves entries of a project ordered by timestamp
	// descending, capped at limit.
	FindByProject(ctx context.Context, projectID uint, limit int) ([]*entity.AuditLog, error)
}
