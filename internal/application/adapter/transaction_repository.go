package adapter

import (
	"context"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// Create persists a new transaction and assigns its generated ID
	// and timestamps.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID with the category name
	// resolved. Returns domain error ErrTransactionNotFound when no row
	// exists.
	FindByID(ctx context.Context, id uint) (*entity.Transaction, error)

	// FindByProject retrieves all transactions of a project ordered by
	// date recorded, most recent first, with category names resolved.
	FindByProject(ctx context.Context, projectID uint) ([]*entity.Transaction, error)

	// CountByCategory returns the number of transactions referencing the
	// given category.
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)

	// Update persists changes to an existing transaction and bumps its
	// last-modified timestamp.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uint) error
}
