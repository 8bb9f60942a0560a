package category

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

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	ProjectID uint
	Name      string
	Type      entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	uow          adapter.UnitOfWork
	projectRepo  adapter.ProjectRepository
	categoryRepo adapter.CategoryRepository
	recorder     *auditlog.Recorder
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(uow adapter.UnitOfWork, projectRepo adapter.ProjectRepository, categoryRepo adapter.CategoryRepository, recorder *auditlog.Recorder) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		uow:          uow,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		recorder:     recorder,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryFieldsMissing,
			"Missing fields (name, type)",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if !entity.IsValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'Income' or 'Expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

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

	exists, err := uc.categoryRepo.ExistsByNameAndProject(ctx, name, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, nameConflictError()
	}

	category := entity.NewCategory(name, input.Type, input.ProjectID)

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		if err := repos.Categories.Create(ctx, category); err != nil {
			return err
		}
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionCreate, entity.AuditTableCategory, &category.ID, category.ProjectID,
			fmt.Sprintf("Category '%s' created.", category.Name))
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameConflictError()
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

func nameConflictError() *domainerror.CategoryError {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"Category name already exists in this project.",
		domainerror.ErrCategoryNameExists,
	)
}
