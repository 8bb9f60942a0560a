package entity

import "time"

// TransactionType represents the type of a transaction. It is
// independent of the referenced category's type.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// IsValidTransactionType reports whether the given type is a known
// transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single monetary record against one category within
// one project.
type Transaction struct {
	ID           uint
	DateRecorded time.Time
	LastModified time.Time
	Type         TransactionType
	Amount       float64
	Description  string
	ProjectID    uint
	CategoryID   uint

	// CategoryName is resolved at query time; it is not a stored column.
	CategoryName string
}

// NewTransaction creates a new Transaction entity. Timestamps are set
// by the persistence layer on insert.
func NewTransaction(transactionType TransactionType, amount float64, description string, categoryID, projectID uint) *Transaction {
	return &Transaction{
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		ProjectID:   projectID,
	}
}
