// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"closet/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrClothNotFound = NewBaseError(
		http.StatusNotFound,
		"CLOTH_NOT_FOUND",
		"cloth not found",
		"",
	)

	// ErrClosetEmpty means the user has no ACTIVE clothes at all. It is
	// deliberately distinct from ErrNoEligibleClothes so callers can tell
	// "nothing registered" apart from "everything is resting".
	ErrClosetEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CLOSET_EMPTY",
		"no active clothes registered for this user",
		"",
	)

	ErrNoEligibleClothes = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_ELIGIBLE_CLOTHES",
		"all clothes are resting within the wash cycle",
		"",
	)

	ErrInvalidCloth = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CLOTH",
		"cloth does not belong to the user or has been discarded",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"requested status transition is not allowed",
		"",
	)

	ErrProviderConflict = NewBaseError(
		http.StatusConflict,
		"PROVIDER_CONFLICT",
		"this provider identity is already linked",
		"",
	)

	ErrWeatherUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"WEATHER_UNAVAILABLE",
		"weather lookup failed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrDataCorruption = NewBaseError(
		http.StatusInternalServerError,
		"DATA_CORRUPTION",
		"stored data violates an invariant",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
