package adapter

import (
	"context"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// Create persists a new category and assigns its generated ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	// Returns domain error ErrCategoryNotFound when no row exists.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindByProject retrieves all categories of a project ordered by
	// type, then name.
	FindByProject(ctx context.Context, projectID uint) ([]*entity.Category, error)

	// FindByIDAndProject retrieves a category by ID scoped to a project.
	// Returns nil without error when no matching row exists.
	FindByIDAndProject(ctx context.Context, id, projectID uint) (*entity.Category, error)

	// ExistsByNameAndProject checks whether a category with the given
	// name exists within the project.
	ExistsByNameAndProject(ctx context.Context, name string, projectID uint) (bool, error)

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uint) error
}
