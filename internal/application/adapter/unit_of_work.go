package adapter

import "context"

// RepositorySet bundles the repositories bound to one database
// transaction.
type RepositorySet struct {
	Projects     ProjectRepository
	Categories   CategoryRepository
	Transactions TransactionRepository
	AuditLogs    AuditLogRepository
}

// UnitOfWork runs a function within a single database transaction.
// The repositories passed to fn share that transaction; returning an
// error rolls it back, returning nil commits it.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos RepositorySet) error) error
}
