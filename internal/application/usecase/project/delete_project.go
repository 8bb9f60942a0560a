package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ProjectID uint
}

// DeleteProjectOutput represents the output of project deletion.
type DeleteProjectOutput struct {
	Success bool
}

// DeleteProjectUseCase handles project deletion logic. Deletion
// cascades to the project's categories, transactions and audit logs.
type DeleteProjectUseCase struct {
	uow         adapter.UnitOfWork
	projectRepo adapter.ProjectRepository
	recorder    *auditlog.Recorder
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(uow adapter.UnitOfWork, projectRepo adapter.ProjectRepository, recorder *auditlog.Recorder) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		uow:         uow,
		projectRepo: projectRepo,
		recorder:    recorder,
	}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) (*DeleteProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		// The deletion entry is appended first and swept away by the
		// cascade below; audit logs belong to the project they describe.
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionDelete, entity.AuditTableProject, &project.ID, project.ID,
			fmt.Sprintf("Project '%s' and all related data deleted.", project.Name))
		return repos.Projects.Delete(ctx, project.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return &DeleteProjectOutput{
		Success: true,
	}, nil
}
