// Package errors defines the errors the directory reports to its callers.
package errors

import (
	"net/http"

	"directory/internal/errors"
)

// AppError is an error with a stable code, an HTTP status and a public message.
// Details may name the offending ids or limits; they are never shown for 5xx.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
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

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches another BaseError carrying the same error code, so that errors
// decorated with WithDetails still compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

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

func define(status int, code, message string) *BaseError {
	return NewBaseError(status, code, message, "")
}

var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrInvalidGeoQuery  = define(http.StatusBadRequest, "INVALID_GEO_QUERY",
		"geo search needs either a center with radius or all four rectangle bounds")
	ErrMaxDepthExceeded = define(http.StatusBadRequest, "MAX_DEPTH_EXCEEDED", "maximum activity nesting level exceeded")

	ErrBuildingNotFound           = define(http.StatusNotFound, "BUILDING_NOT_FOUND", "building not found")
	ErrActivityNotFound           = define(http.StatusNotFound, "ACTIVITY_NOT_FOUND", "activity not found")
	ErrParentActivityNotFound     = define(http.StatusNotFound, "PARENT_ACTIVITY_NOT_FOUND", "parent activity not found")
	ErrReferencedActivityNotFound = define(http.StatusNotFound, "REFERENCED_ACTIVITY_NOT_FOUND", "referenced activity not found")
	ErrOrganizationNotFound       = define(http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "organization not found")

	ErrConflict = define(http.StatusConflict, "CONFLICT", "resource conflict")

	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed")
	ErrInternalError     = define(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
