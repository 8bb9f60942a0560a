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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	ProjectID   uint
	Type        entity.TransactionType
	CategoryID  uint
	Amount      float64
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	uow          adapter.UnitOfWork
	projectRepo  adapter.ProjectRepository
	categoryRepo adapter.CategoryRepository
	recorder     *auditlog.Recorder
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(uow adapter.UnitOfWork, projectRepo adapter.ProjectRepository, categoryRepo adapter.CategoryRepository, recorder *auditlog.Recorder) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		uow:          uow,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		recorder:     recorder,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'Income' or 'Expense'",
			domainerror.ErrInvalidTransactionType,
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

	category, err := uc.categoryRepo.FindByIDAndProject(ctx, input.CategoryID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, invalidCategoryError()
	}

	transaction := entity.NewTransaction(input.Type, input.Amount, input.Description, category.ID, input.ProjectID)
	transaction.CategoryName = category.Name

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		if err := repos.Transactions.Create(ctx, transaction); err != nil {
			return err
		}
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionCreate, entity.AuditTableTransaction, &transaction.ID, transaction.ProjectID,
			fmt.Sprintf("Amount: %v, Desc: %s", transaction.Amount, transaction.Description))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

func invalidCategoryError() *domainerror.TransactionError {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTxnCategory,
		"Invalid category ID.",
		domainerror.ErrInvalidTransactionCategory,
	)
}
