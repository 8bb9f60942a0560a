// Package adapter defines interfaces for external dependencies following the ports and adapters pattern.
package adapter

import (
	"context"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	// Create persists a new project and assigns its generated ID.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	// Returns domain error ErrProjectNotFound when no row exists.
	FindByID(ctx context.Context, id uint) (*entity.Project, error)

	// FindAll retrieves all projects ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// ExistsByName checks whether a project with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update persists changes to an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project together with its categories, transactions
	// and audit logs.
	Delete(ctx context.Context, id uint) error
}
