package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/project-ledger/backend/internal/application/adapter"
)

// gormUnitOfWork implements adapter.UnitOfWork on top of GORM's
// transaction support.
type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work bound to the given database.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &gormUnitOfWork{
		db: db,
	}
}

// Execute runs fn within one database transaction. All repositories
// handed to fn operate on that transaction; an error from fn rolls it
// back.
func (u *gormUnitOfWork) Execute(ctx context.Context, fn func(repos adapter.RepositorySet) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(adapter.RepositorySet{
			Projects:     NewProjectRepository(tx),
			Categories:   NewCategoryRepository(tx),
			Transactions: NewTransactionRepository(tx),
			AuditLogs:    NewAuditLogRepository(tx),
		})
	})
}
