// Package errors defines the application error taxonomy. Every error that can
// reach a client is an AppError carrying an HTTP status, a stable business
// code, and the exact message serialized to the client.
package errors

import (
	"net/http"

	"petstar/internal/errors"
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

// NewMissingFields builds a validation error with an endpoint-specific message,
// e.g. "Email and password fields are required".
func NewMissingFields(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "MISSING_FIELDS", message, "")
}

// Predefined error types
var (
	// Registration and login errors. The duplicate-email case keeps the
	// historical 400 mapping rather than 409; the login failure message is
	// deliberately uniform for unknown email and wrong password.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"The email used is already in use",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Password change errors.
	ErrInvalidOldPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OLD_PASSWORD",
		"Invalid old password",
		"",
	)

	ErrSamePassword = NewBaseError(
		http.StatusBadRequest,
		"SAME_PASSWORD",
		"New password must be different from old password",
		"",
	)

	ErrPasswordConfirmation = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_CONFIRMATION_MISMATCH",
		"New password and confirm new password do not match",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	// Password recovery errors.
	ErrResetTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"RESET_TOKEN_NOT_FOUND",
		"UUID not found",
		"",
	)

	ErrResetTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_EXPIRED",
		"Link expired",
		"",
	)

	// Lookup errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrTopicNotFound = NewBaseError(
		http.StatusNotFound,
		"TOPIC_NOT_FOUND",
		"ForumTopic not found",
		"",
	)

	// Session errors.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
