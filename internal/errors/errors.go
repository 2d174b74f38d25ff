// Package errors provides error types and handling for taskapp.
// It includes custom error types with HTTP status codes and error codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with an associated HTTP status code.
type AppError struct {
	// Code is an optional error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// StatusCode is the HTTP status code to return
	StatusCode int
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// Client error codes.
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeUserNotConfirmed = "USER_NOT_CONFIRMED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeDuplicateEntity  = "DUPLICATE_ENTITY"

	// Server error codes.
	ErrCodeInternalError         = "INTERNAL_ERROR"
	ErrCodeDatabaseError         = "DATABASE_ERROR"
	ErrCodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	ErrCodeEventPublishError     = "EVENT_PUBLISH_ERROR"
	ErrCodeEmailDeliveryError    = "EMAIL_DELIVERY_ERROR"
	ErrCodeIdentityProviderError = "IDENTITY_PROVIDER_ERROR"
)

// NewClientError creates a new client error (4xx status codes).
func NewClientError(statusCode int, code, message string, cause error) *AppError {
	if statusCode < 400 || statusCode >= 500 {
		panic(fmt.Sprintf("NewClientError called with non-client status code: %d", statusCode))
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewServerError creates a new server error (5xx status codes).
func NewServerError(statusCode int, code, message string, cause error) *AppError {
	if statusCode < 500 || statusCode >= 600 {
		panic(fmt.Sprintf("NewServerError called with non-server status code: %d", statusCode))
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// Convenience constructors for common errors

// ErrUnauthorized creates an unauthorized error (401).
func ErrUnauthorized(message string, cause error) *AppError {
	return NewClientError(http.StatusUnauthorized, ErrCodeUnauthorized, message, cause)
}

// ErrUserNotConfirmed creates an error for sign-ins of accounts that are not confirmed yet (403).
func ErrUserNotConfirmed(message string, cause error) *AppError {
	return NewClientError(http.StatusForbidden, ErrCodeUserNotConfirmed, message, cause)
}

// ErrNotFound creates a not found error (404).
func ErrNotFound(message string, cause error) *AppError {
	return NewClientError(http.StatusNotFound, ErrCodeNotFound, message, cause)
}

// ErrConflict creates a conflict error (409).
func ErrConflict(message string, cause error) *AppError {
	return NewClientError(http.StatusConflict, ErrCodeConflict, message, cause)
}

// ErrBadRequest creates a bad request error (400).
func ErrBadRequest(message string, cause error) *AppError {
	return NewClientError(http.StatusBadRequest, ErrCodeInvalidRequest, message, cause)
}

// ErrDuplicateEntity creates an error for entities that already exist and must not be overwritten (409).
func ErrDuplicateEntity(message string, cause error) *AppError {
	return NewClientError(http.StatusConflict, ErrCodeDuplicateEntity, message, cause)
}

// ErrInternalError creates an internal server error (500).
func ErrInternalError(message string, cause error) *AppError {
	return NewServerError(http.StatusInternalServerError, ErrCodeInternalError, message, cause)
}

// ErrDatabaseError creates a database error (503 Service Unavailable).
// Database failures are typically transient issues.
func ErrDatabaseError(message string, cause error) *AppError {
	return NewServerError(http.StatusServiceUnavailable, ErrCodeDatabaseError, message, cause)
}

// ErrServiceUnavailable creates a service unavailable error (503).
// Used when an optional provider is not configured for this deployment.
func ErrServiceUnavailable(message string, cause error) *AppError {
	return NewServerError(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, cause)
}

// ErrEventPublish creates an error for event bus failures (502).
// Application services never surface it to callers.
func ErrEventPublish(message string, cause error) *AppError {
	return NewServerError(http.StatusBadGateway, ErrCodeEventPublishError, message, cause)
}

// ErrEmailDelivery creates an error for email provider failures (502).
func ErrEmailDelivery(message string, cause error) *AppError {
	return NewServerError(http.StatusBadGateway, ErrCodeEmailDeliveryError, message, cause)
}

// ErrIdentityProvider creates an error for unexpected identity provider failures (502).
func ErrIdentityProvider(message string, cause error) *AppError {
	return NewServerError(http.StatusBadGateway, ErrCodeIdentityProviderError, message, cause)
}

// HasCode reports whether err carries the given application error code.
func HasCode(err error, code string) bool {
	return errors.Is(err, &AppError{Code: code})
}

// GetStatusCode extracts the HTTP status code from an error.
// Returns 500 if the error is not an AppError.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetErrorDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise returns the main error message.
func GetErrorDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
