// Package error defines domain-specific errors for the Project Ledger application.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectNameExists is returned when a project name is already taken.
	ErrProjectNameExists = errors.New("project name already exists")

	// ErrProjectNameRequired is returned when the project name is missing or blank.
	ErrProjectNameRequired = errors.New("project name is required")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	ErrCodeProjectNameRequired ProjectErrorCode = "PRJ-010001"
	ErrCodeProjectNotFound     ProjectErrorCode = "PRJ-010002"
	ErrCodeProjectNameExists   ProjectErrorCode = "PRJ-010003"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
