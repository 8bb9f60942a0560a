package auditlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// DefaultPageSize caps how many entries a single listing returns.
const DefaultPageSize = 100

// ListAuditLogsInput represents the input for audit log listing.
type ListAuditLogsInput struct {
	ProjectID uint
}

// ListAuditLogsOutput represents the output of audit log listing.
type ListAuditLogsOutput struct {
	Logs []*entity.AuditLog
}

// ListAuditLogsUseCase handles audit log listing logic.
type ListAuditLogsUseCase struct {
	projectRepo  adapter.ProjectRepository
	auditLogRepo adapter.AuditLogRepository
	pageSize     int
}

// NewListAuditLogsUseCase creates a new ListAuditLogsUseCase instance.
// A pageSize of zero or less falls back to DefaultPageSize.
func NewListAuditLogsUseCase(projectRepo adapter.ProjectRepository, auditLogRepo adapter.AuditLogRepository, pageSize int) *ListAuditLogsUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ListAuditLogsUseCase{
		projectRepo:  projectRepo,
		auditLogRepo: auditLogRepo,
		pageSize:     pageSize,
	}
}

// Execute retrieves a project's audit trail, newest entries first.
func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, input ListAuditLogsInput) (*ListAuditLogsOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	logs, err := uc.auditLogRepo.FindByProject(ctx, input.ProjectID, uc.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return &ListAuditLogsOutput{
		Logs: logs,
	}, nil
}
