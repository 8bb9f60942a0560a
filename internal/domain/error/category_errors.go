package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the (name, project) pair is already taken.
	ErrCategoryNameExists = errors.New("category name already exists in this project")

	// ErrCategoryNameRequired is returned when the category name is missing or blank.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the category type is not Income or Expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryInUse is returned when deleting a category that transactions still reference.
	ErrCategoryInUse = errors.New("category is in use by transactions")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryFieldsMissing CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
