// Package errors provides custom error types for the Cost Manager API.
// Service-layer errors should use AppError so responses stay consistent
// and never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation       = &AppError{Code: "validation_error", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "not_found", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrMethodNotAllowed = &AppError{Code: "method_not_allowed", Message: "Method not allowed", StatusCode: http.StatusMethodNotAllowed}
	ErrInternalServer   = &AppError{Code: "internal_error", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound  = &AppError{Code: "not_found", Message: "user not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUser = &AppError{Code: "db_error", Message: "a user with this id already exists", StatusCode: http.StatusBadRequest}
)

// Cost errors.
var (
	ErrCostInPast      = &AppError{Code: "validation_error", Message: "createdAt cannot belong to the past", StatusCode: http.StatusBadRequest}
	ErrUnknownCategory = &AppError{Code: "validation_error", Message: "category is not allowed", StatusCode: http.StatusBadRequest}
	ErrNegativeSum     = &AppError{Code: "validation_error", Message: "sum must be >= 0", StatusCode: http.StatusBadRequest}
)
