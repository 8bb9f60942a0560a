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

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic. Every new
// project is provisioned with the starter category set and two audit
// entries in the same database transaction.
type CreateProjectUseCase struct {
	uow         adapter.UnitOfWork
	projectRepo adapter.ProjectRepository
	recorder    *auditlog.Recorder
	starterSet  []entity.StarterCategory
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(uow adapter.UnitOfWork, projectRepo adapter.ProjectRepository, recorder *auditlog.Recorder, starterSet []entity.StarterCategory) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		uow:         uow,
		projectRepo: projectRepo,
		recorder:    recorder,
		starterSet:  starterSet,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			"Project name is required.",
			domainerror.ErrProjectNameRequired,
		)
	}
	description := strings.TrimSpace(input.Description)

	exists, err := uc.projectRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name existence: %w", err)
	}
	if exists {
		return nil, nameConflictError()
	}

	project := entity.NewProject(name, description)

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		if err := repos.Projects.Create(ctx, project); err != nil {
			return err
		}

		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionCreate, entity.AuditTableProject, &project.ID, project.ID,
			fmt.Sprintf("Project '%s' created.", project.Name))

		for _, starter := range uc.starterSet {
			category := entity.NewCategory(starter.Name, starter.Type, project.ID)
			if err := repos.Categories.Create(ctx, category); err != nil {
				return err
			}
		}

		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionCreate, entity.AuditTableCategory, nil, project.ID,
			"Initial categories created.")

		return nil
	})
	if err != nil {
		// A concurrent create may win the race on the unique name; the
		// constraint violation surfaces here after rollback.
		if errors.Is(err, domainerror.ErrProjectNameExists) {
			return nil, nameConflictError()
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}

func nameConflictError() *domainerror.ProjectError {
	return domainerror.NewProjectError(
		domainerror.ErrCodeProjectNameExists,
		"Project name already exists.",
		domainerror.ErrProjectNameExists,
	)
}
