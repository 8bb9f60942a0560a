// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for category listing.
type ListCategoriesInput struct {
	ProjectID uint
}

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	projectRepo  adapter.ProjectRepository
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(projectRepo adapter.ProjectRepository, categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves a project's categories ordered by type, then name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
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

	categories, err := uc.categoryRepo.FindByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
