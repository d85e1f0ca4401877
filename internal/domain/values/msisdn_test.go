package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMSISDN(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{
			name:    "valid 10-digit number",
			number:  "5512345678",
			wantErr: false,
		},
		{
			name:    "empty",
			number:  "",
			wantErr: true,
		},
		{
			name:    "too short",
			number:  "12345",
			wantErr: true,
		},
		{
			name:    "too long",
			number:  "55123456789",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			number:  "55123456ab",
			wantErr: true,
		},
		{
			name:    "E.164 prefix rejected",
			number:  "+525512345",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msisdn, err := NewMSISDN(tt.number)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.number, msisdn.String())
			assert.False(t, msisdn.IsEmpty())
		})
	}
}

func TestMSISDN_Masked(t *testing.T) {
	msisdn := MustNewMSISDN("5512345678")
	masked := msisdn.Masked()

	assert.Equal(t, "XXXXXX5678", masked)
	assert.NotContains(t, masked, "551234")
}

func TestMaskMSISDN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full number",
			input:    "5512345678",
			expected: "XXXXXX5678",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "short value fully masked",
			input:    "123",
			expected: "XXXXXX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskMSISDN(tt.input))
		})
	}
}

func TestMSISDN_JSON(t *testing.T) {
	msisdn := MustNewMSISDN("5512345678")

	data, err := json.Marshal(msisdn)
	require.NoError(t, err)
	assert.Equal(t, `"5512345678"`, string(data))

	var decoded MSISDN
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, msisdn.Equal(decoded))

	var invalid MSISDN
	assert.Error(t, json.Unmarshal([]byte(`"123"`), &invalid))
}
