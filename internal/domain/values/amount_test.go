package values

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "positive amount",
			value:   "100.00",
			wantErr: false,
		},
		{
			name:    "small positive amount",
			value:   "0.01",
			wantErr: false,
		},
		{
			name:    "zero",
			value:   "0",
			wantErr: true,
		},
		{
			name:    "negative",
			value:   "-50.00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := NewAmountFromString(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)
			assert.True(t, amount.Decimal().Equal(expected))
		})
	}
}

func TestNewAmountFromString_Invalid(t *testing.T) {
	_, err := NewAmountFromString("not-a-number")
	assert.Error(t, err)
}

func TestAmount_ExactRoundTrip(t *testing.T) {
	// 100.00 must survive marshal/unmarshal without float drift.
	amount := MustNewAmount("100.00")

	data, err := json.Marshal(amount)
	require.NoError(t, err)

	var decoded Amount
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, amount.Equal(decoded))
	assert.Equal(t, "100", decoded.Decimal().Truncate(0).String())
}
