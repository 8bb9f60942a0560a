package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uint
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic. Unlike the
// project cascade, a category still referenced by transactions is
// guarded: the delete is refused and nothing is mutated.
type DeleteCategoryUseCase struct {
	uow             adapter.UnitOfWork
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	recorder        *auditlog.Recorder
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(uow adapter.UnitOfWork, categoryRepo adapter.CategoryRepository, transactionRepo adapter.TransactionRepository, recorder *auditlog.Recorder) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		uow:             uow,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		recorder:        recorder,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
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

	inUse, err := uc.transactionRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}
	if inUse > 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"Cannot delete category: It is currently in use by transactions.",
			domainerror.ErrCategoryInUse,
		)
	}

	err = uc.uow.Execute(ctx, func(repos adapter.RepositorySet) error {
		uc.recorder.Record(ctx, repos.AuditLogs,
			entity.AuditActionDelete, entity.AuditTableCategory, &category.ID, category.ProjectID,
			fmt.Sprintf("Category '%s' deleted.", category.Name))
		return repos.Categories.Delete(ctx, category.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
