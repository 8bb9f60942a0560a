package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uint
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	uow             adapter.UnitOfWork
	transactionRepo adapter.TransactionRepository
	recorder        *auditlog.Recorder
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(uow adapter.UnitOfWork, transactionRepo adapter.TransactionRepository, recorder *auditlog.Recorder) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		uow:             uow,
		transactionRepo: transactionRepo,
		recorder:        recorder,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
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

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionDelete, entity.AuditTableTransaction, &transaction.ID, transaction.ProjectID,
			fmt.Sprintf("Deleted item (Amount: %v, Desc: %s)", transaction.Amount, transaction.Description))
		return repos.Transactions.Delete(ctx, transaction.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
