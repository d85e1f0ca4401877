package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid address", "user@example.com", false},
		{"sentinel accepted", "no_email", false},
		{"missing at", "userexample.com", true},
		{"empty local part", "@example.com", true},
		{"empty domain", "user@", true},
		{"double at", "user@@example.com", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewContactEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, e.String())
		})
	}
}

func TestContactEmail_IsSentinel(t *testing.T) {
	e, err := NewContactEmail(NoEmailSentinel)
	require.NoError(t, err)
	assert.True(t, e.IsSentinel())

	e, err = NewContactEmail("user@example.com")
	require.NoError(t, err)
	assert.False(t, e.IsSentinel())
}
