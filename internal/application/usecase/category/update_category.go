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

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID uint
	Name       string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic. Only the name
// is mutable; the type and owning project are fixed at creation.
type UpdateCategoryUseCase struct {
	uow          adapter.UnitOfWork
	categoryRepo adapter.CategoryRepository
	recorder     *auditlog.Recorder
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(uow adapter.UnitOfWork, categoryRepo adapter.CategoryRepository, recorder *auditlog.Recorder) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		uow:          uow,
		categoryRepo: categoryRepo,
		recorder:     recorder,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryFieldsMissing,
			"Category name is required.",
			domainerror.ErrCategoryNameRequired,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if name != category.Name {
		exists, err := uc.categoryRepo.ExistsByNameAndProject(ctx, name, category.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return nil, nameConflictError()
		}
	}

	details := fmt.Sprintf("Category name: '%s' -> '%s'", category.Name, name)
	category.Name = name

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionUpdate, entity.AuditTableCategory, &category.ID, category.ProjectID, details)
		return repos.Categories.Update(ctx, category)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameConflictError()
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
