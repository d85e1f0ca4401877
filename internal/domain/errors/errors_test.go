package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorTaxonomy(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		errType   ErrorType
		retryable bool
		status    int
	}{
		{"configuration", NewConfigurationError("missing token"), ErrorTypeConfiguration, false, 500},
		{"validation", NewValidationError("INVALID_PAYLOAD", "bad"), ErrorTypeValidation, false, 400},
		{"transient", NewTransientError("HTTP 503"), ErrorTypeTransient, true, 503},
		{"external", NewAPIError("carrier failed", 502), ErrorTypeExternal, false, 502},
		{"conflict", NewConflictError("already suspended"), ErrorTypeConflict, false, 409},
		{"internal", NewInternalError("oops"), ErrorTypeInternal, true, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsType(tt.err, tt.errType))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Equal(t, tt.status, GetStatusCode(tt.err))
		})
	}
}

func TestGetStatusCode_PlainError(t *testing.T) {
	assert.Equal(t, 500, GetStatusCode(fmt.Errorf("plain")))
}

func TestCarrierCode(t *testing.T) {
	err := NewAPIError("sin saldo", 400).WithCarrierCode(1009)
	assert.Equal(t, 1009, CarrierCode(err))
	assert.Equal(t, 0, CarrierCode(fmt.Errorf("plain")))

	// The code survives wrapping.
	wrapped := NewConflictError("remapped").WithCarrierCode(1027).WithCause(err)
	assert.Equal(t, 1027, CarrierCode(wrapped))
}

func TestWithDetails(t *testing.T) {
	err := NewValidationError("INVALID_PAYLOAD", "bad").
		WithDetails(map[string]interface{}{"violations": []string{"msisdn: field is required"}})
	assert.Equal(t, []string{"msisdn: field is required"}, err.Details["violations"])
}

func TestErrorIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransientError("request failed").WithCause(cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}
