package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
)

// categoryNameSelect joins the categories table so list/read results
// carry the referenced category's name.
const categoryNameSelect = "transactions.*, categories.name AS category_name"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database and assigns its
// generated ID and timestamps.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.ID = transactionModel.ID
	transaction.DateRecorded = transactionModel.DateRecorded
	transaction.LastModified = transactionModel.LastModified
	return nil
}

// FindByID retrieves a transaction by its ID with the category name resolved.
func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(categoryNameSelect).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByProject retrieves all transactions of a project, most recent
// first, with category names resolved.
func (r *transactionRepository) FindByProject(ctx context.Context, projectID uint) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(categoryNameSelect).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.project_id = ?", projectID).
		Order("transactions.date_recorded DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// CountByCategory returns the number of transactions referencing the category.
func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing transaction in the database. GORM bumps
// the last_modified column via autoUpdateTime.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.LastModified = transactionModel.LastModified
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
