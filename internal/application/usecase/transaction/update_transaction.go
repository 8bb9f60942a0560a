package transaction

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

// UpdateTransactionInput represents the input for transaction update.
// Only non-nil fields are considered; a field equal to the stored value
// is ignored.
type UpdateTransactionInput struct {
	TransactionID uint
	Type          *entity.TransactionType
	Amount        *float64
	CategoryID    *uint
	Description   *string
}

// UpdateTransactionOutput represents the output of transaction update.
// NoChanges is true when every supplied field matched the stored value;
// in that case no audit entry was written.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	NoChanges   bool
}

// UpdateTransactionUseCase handles partial transaction updates. Each
// applied change contributes one "before -> after" fragment to a single
// audit entry.
type UpdateTransactionUseCase struct {
	uow             adapter.UnitOfWork
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	recorder        *auditlog.Recorder
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(uow adapter.UnitOfWork, transactionRepo adapter.TransactionRepository, categoryRepo adapter.CategoryRepository, recorder *auditlog.Recorder) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		uow:             uow,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		recorder:        recorder,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	var changes []string

	if input.Type != nil && *input.Type != transaction.Type {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'Income' or 'Expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		changes = append(changes, fmt.Sprintf("Type: %s -> %s", transaction.Type, *input.Type))
		transaction.Type = *input.Type
	}

	if input.Amount != nil && *input.Amount != transaction.Amount {
		changes = append(changes, fmt.Sprintf("Amount: %v -> %v", transaction.Amount, *input.Amount))
		transaction.Amount = *input.Amount
	}

	if input.CategoryID != nil && *input.CategoryID != transaction.CategoryID {
		// The replacement category must live in the same project; the
		// check happens before the change is recorded.
		category, err := uc.categoryRepo.FindByIDAndProject(ctx, *input.CategoryID, transaction.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category == nil {
			return nil, invalidCategoryError()
		}
		changes = append(changes, fmt.Sprintf("Category: %s -> %s", transaction.CategoryName, category.Name))
		transaction.CategoryID = category.ID
		transaction.CategoryName = category.Name
	}

	if input.Description != nil && *input.Description != transaction.Description {
		changes = append(changes, fmt.Sprintf("Desc: '%s' -> '%s'", transaction.Description, *input.Description))
		transaction.Description = *input.Description
	}

	if len(changes) == 0 {
		return &UpdateTransactionOutput{
			Transaction: transaction,
			NoChanges:   true,
		}, nil
	}

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionUpdate, entity.AuditTableTransaction, &transaction.ID, transaction.ProjectID,
			strings.Join(changes, "; "))
		return repos.Transactions.Update(ctx, transaction)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
