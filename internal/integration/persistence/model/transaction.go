package model

import (
	"time"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	DateRecorded time.Time `gorm:"not null;autoCreateTime;index"`
	LastModified time.Time `gorm:"autoUpdateTime"`
	Type         string    `gorm:"type:varchar(10);not null"`
	Amount       float64   `gorm:"not null"`
	Description  string    `gorm:"type:varchar(200)"`
	ProjectID    uint      `gorm:"not null;index"`
	CategoryID   uint      `gorm:"not null;index"`

	// CategoryName is populated by list/read queries joining the
	// categories table. It is not a column of this table.
	CategoryName string `gorm:"->;-:migration"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		DateRecorded: m.DateRecorded,
		LastModified: m.LastModified,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		Description:  m.Description,
		ProjectID:    m.ProjectID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		DateRecorded: transaction.DateRecorded,
		LastModified: transaction.LastModified,
		Type:         string(transaction.Type),
		Amount:       transaction.Amount,
		Description:  transaction.Description,
		ProjectID:    transaction.ProjectID,
		CategoryID:   transaction.CategoryID,
	}
}
