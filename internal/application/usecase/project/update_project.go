package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/project-ledger/backend/internal/application/adapter"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project update.
type UpdateProjectInput struct {
	ProjectID   uint
	Name        string
	Description string
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	uow         adapter.UnitOfWork
	projectRepo adapter.ProjectRepository
	recorder    *auditlog.Recorder
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(uow adapter.UnitOfWork, projectRepo adapter.ProjectRepository, recorder *auditlog.Recorder) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		uow:         uow,
		projectRepo: projectRepo,
		recorder:    recorder,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			"Project name is required.",
			domainerror.ErrProjectNameRequired,
		)
	}
	description := strings.TrimSpace(input.Description)

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

	if name != project.Name {
		exists, err := uc.projectRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check project name existence: %w", err)
		}
		if exists {
			return nil, nameConflictError()
		}
	}

	details := fmt.Sprintf("Project name: '%s' -> '%s', Desc: '%s' -> '%s'",
		project.Name, name, project.Description, description)
	project.Name = name
	project.Description = description

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionUpdate, entity.AuditTableProject, &project.ID, project.ID, details)
		return repos.Projects.Update(ctx, project)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNameExists) {
			return nil, nameConflictError()
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
