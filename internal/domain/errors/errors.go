package errors

import (
	"net/http"

	"causes/internal/errors"
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
	// Cause-related errors
	ErrCauseNotFound = NewBaseError(
		http.StatusNotFound,
		"CAUSE_NOT_FOUND",
		"Cause not found",
		"",
	)

	ErrCauseCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAUSE_CREATION_FAILED",
		"Failed to create cause",
		"",
	)

	ErrCauseUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAUSE_UPDATE_FAILED",
		"Failed to update cause",
		"",
	)

	ErrCauseOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CAUSE_OWNERSHIP_VIOLATION",
		"You do not have permission to modify this cause",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"Unknown cause category",
		"",
	)

	// Authoring session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Authoring session not found or expired",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Too many concurrent authoring sessions",
		"",
	)

	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"A submission is already in progress",
		"",
	)

	ErrWorkflowStep = NewBaseError(
		http.StatusConflict,
		"WORKFLOW_STEP_INVALID",
		"Operation not allowed in the current authoring step",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// FieldValidationError carries per-field validation failures through the
// AppError surface so handlers can return them in a structured body.
type FieldValidationError struct {
	fields []FieldIssue
}

// FieldIssue is one field-level validation failure.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// NewFieldValidationError creates a validation error carrying field issues.
func NewFieldValidationError(fields []FieldIssue) AppError {
	return &FieldValidationError{fields: fields}
}

// Error implements the error interface
func (e *FieldValidationError) Error() string {
	return "validation failed"
}

// HTTPCode returns the HTTP status code
func (e *FieldValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *FieldValidationError) Details() string {
	if len(e.fields) == 0 {
		return ""
	}

	out := e.fields[0].Field + ": " + e.fields[0].Reason
	for _, f := range e.fields[1:] {
		out += "; " + f.Field + ": " + f.Reason
	}

	return out
}

// Fields returns the structured field issues.
func (e *FieldValidationError) Fields() []FieldIssue {
	return e.fields
}
