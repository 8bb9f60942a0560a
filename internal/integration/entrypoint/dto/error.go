// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error payload returned to the client.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// MessageResponse represents a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}
