package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures raised by the carrier integration.
type ErrorType string

const (
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeTransient     ErrorType = "transient"
	ErrorTypeExternal      ErrorType = "external"
	ErrorTypeConflict      ErrorType = "conflict"
	ErrorTypeInternal      ErrorType = "internal"
)

// AppError represents a structured application error. CarrierCode carries the
// numeric error code returned by the Addinteli API when one was present, so
// callers branch on the code by equality rather than scraping the message.
type AppError struct {
	Type        ErrorType              `json:"type"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	CarrierCode int                    `json:"carrier_code,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
	Cause       error                  `json:"-"`
	Retryable   bool                   `json:"retryable"`
	StatusCode  int                    `json:"status_code"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithCarrierCode(code int) *AppError {
	e.CarrierCode = code
	return e
}

// Error constructors

// NewConfigurationError reports unusable process configuration. Fatal at
// construction time, never retried.
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConfiguration,
		Code:       "CONFIGURATION_ERROR",
		Message:    message,
		Retryable:  false,
		StatusCode: 500,
	}
}

// NewValidationError reports a payload that failed schema validation before
// any network call was attempted.
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		Retryable:  false,
		StatusCode: 400,
	}
}

// NewTransientError reports a transport failure or retryable carrier status.
func NewTransientError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeTransient,
		Code:       "TRANSIENT_TRANSPORT_ERROR",
		Message:    message,
		Retryable:  true,
		StatusCode: 503,
	}
}

// NewAPIError reports a terminal carrier failure surfaced to the caller.
func NewAPIError(message string, statusCode int) *AppError {
	if statusCode == 0 {
		statusCode = 502
	}
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       "CARRIER_API_ERROR",
		Message:    message,
		Retryable:  false,
		StatusCode: statusCode,
	}
}

// NewConflictError reports an operation the carrier considers already applied
// (idempotent-conflict semantics, e.g. suspending a suspended line).
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       "CONFLICT",
		Message:    message,
		Retryable:  false,
		StatusCode: 409,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		Retryable:  true,
		StatusCode: 500,
	}
}

// IsType checks if an error is of a specific type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}

// CarrierCode extracts the carrier error code from an error, or 0 when the
// failure carried no structured code.
func CarrierCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.CarrierCode
	}
	return 0
}

// GetStatusCode extracts the HTTP status code from an error.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 500
}
