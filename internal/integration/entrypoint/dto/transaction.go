package dto

import (
	"time"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is a pointer so an explicit zero passes the
// required binding.
type CreateTransactionRequest struct {
	Type        string   `json:"type" binding:"required"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Description string   `json:"description"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. Only fields present in the payload are applied.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty"`
	CategoryID  *uint    `json:"category_id,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           uint      `json:"id"`
	DateRecorded time.Time `json:"date_recorded"`
	LastModified time.Time `json:"last_modified"`
	Type         string    `json:"type"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ProjectID    uint      `json:"project_id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID,
		DateRecorded: transaction.DateRecorded,
		LastModified: transaction.LastModified,
		Type:         string(transaction.Type),
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName,
		ProjectID:    transaction.ProjectID,
		Amount:       transaction.Amount,
		Description:  transaction.Description,
	}
}

// ToTransactionListResponse converts a list of transactions to response DTOs.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return responses
}
