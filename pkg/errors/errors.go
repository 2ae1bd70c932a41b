package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeDecode      ErrorType = "decode"
	ErrorTypeParse       ErrorType = "parse"
	ErrorTypeExtraction  ErrorType = "extraction"
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeTooLarge    ErrorType = "too_large"
	ErrorTypeStorage     ErrorType = "storage"
	ErrorTypeUnavailable ErrorType = "unavailable"
	ErrorTypeInternal    ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Description is the human-readable text reported to callers: the cause
// when there is one, otherwise the message, followed by any details.
func (e *AppError) Description() string {
	desc := e.Message
	if e.Cause != nil && e.Cause.Error() != "" {
		desc = e.Cause.Error()
	}
	if e.Details != "" {
		desc = fmt.Sprintf("%s (%s)", desc, e.Details)
	}
	return desc
}

// NewDecodeError wraps a base64 decoding failure
func NewDecodeError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeDecode,
		Message:    "input is not valid base64",
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewParseError wraps a failure to open the bytes as a PDF document
func NewParseError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeParse,
		Message:    "failed to open PDF",
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewExtractionError wraps a failure while reading one page's content
func NewExtractionError(page int, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtraction,
		Message:    "failed to extract text",
		Details:    fmt.Sprintf("page %d", page),
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewTooLargeError reports input above the configured limit
func NewTooLargeError(limit int64, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    "input exceeds maximum size",
		Details:    fmt.Sprintf("limit %d bytes", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewStorageError wraps a failed download from object storage
func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewUnavailableError reports a dependency that is not configured
func NewUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
