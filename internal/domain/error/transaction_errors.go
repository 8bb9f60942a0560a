package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionFieldsMissing is returned when a required field is absent.
	ErrTransactionFieldsMissing = errors.New("missing required fields")

	// ErrInvalidTransactionType is returned when the transaction type is not Income or Expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionCategory is returned when the category id does not
	// reference a category belonging to the transaction's project.
	ErrInvalidTransactionCategory = errors.New("invalid category ID")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionFieldsMissing TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTxnCategory       TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
