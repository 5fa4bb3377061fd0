package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Pipeline specific errors
	CodeInvalidCategory     ErrorCode = "INVALID_CATEGORY"
	CodeLLMServiceError     ErrorCode = "LLM_SERVICE_ERROR"
	CodeUnsupportedProvider ErrorCode = "UNSUPPORTED_PROVIDER"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidCategoryError(category string) *DomainError {
	return NewError(CodeInvalidCategory, fmt.Sprintf("Invalid category: %s", category), nil)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", cause)
}

func NewUnsupportedProviderError(provider string) *DomainError {
	return NewError(CodeUnsupportedProvider, fmt.Sprintf("Unsupported LLM provider: %s", provider), nil)
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a single-field validation error.
func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// NewMissingFieldError reports a required field that was absent or blank.
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// NewInvalidFormatError reports a field whose value has the wrong shape.
func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("invalid format for %s: %s", field, value)}
}

// NewOutOfRangeError reports a numeric field outside its allowed range.
func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value)}
}

// ValidationErrors aggregates validation failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}
