package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIMEI(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "valid 15-digit imei",
			value:   "490154203237518",
			wantErr: false,
		},
		{
			name:    "valid 14-digit imei",
			value:   "49015420323751",
			wantErr: false,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "13 digits",
			value:   "4901542032375",
			wantErr: true,
		},
		{
			name:    "16 digits",
			value:   "4901542032375189",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			value:   "49015420323751a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imei, err := NewIMEI(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, imei.String())
		})
	}
}

func TestIMEI_Equal(t *testing.T) {
	a := MustNewIMEI("490154203237518")
	b := MustNewIMEI("490154203237518")
	c := MustNewIMEI("49015420323751")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
