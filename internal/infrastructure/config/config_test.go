package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sandbox", cfg.Addinteli.Mode)
	assert.Equal(t, 3, cfg.Addinteli.RetryTotal)
	assert.Equal(t, 10*time.Second, cfg.Addinteli.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MEXARED_ADDINTELI__MODE", "prod")
	t.Setenv("MEXARED_ADDINTELI__RETRY_TOTAL", "5")
	t.Setenv("MEXARED_ADDINTELI__DISTRIBUTOR_ID", "f47ac10b-58cc-4372-a567-0e02b2c3d479")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Addinteli.Mode)
	assert.Equal(t, 5, cfg.Addinteli.RetryTotal)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", cfg.Addinteli.DistributorID)
}

func TestAddinteliConfig_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AddinteliConfig
		wantURL string
		wantErr bool
	}{
		{
			name: "sandbox resolves sandbox endpoint",
			cfg: AddinteliConfig{
				Mode:    "sandbox",
				Sandbox: CarrierEndpoint{BaseURL: "https://sandbox.example.com", Token: "sb-token"},
				Prod:    CarrierEndpoint{BaseURL: "https://api.example.com", Token: "prod-token"},
			},
			wantURL: "https://sandbox.example.com",
		},
		{
			name: "prod resolves prod endpoint",
			cfg: AddinteliConfig{
				Mode: "prod",
				Prod: CarrierEndpoint{BaseURL: "https://api.example.com", Token: "prod-token"},
			},
			wantURL: "https://api.example.com",
		},
		{
			name: "missing token is fatal",
			cfg: AddinteliConfig{
				Mode:    "sandbox",
				Sandbox: CarrierEndpoint{BaseURL: "https://sandbox.example.com"},
			},
			wantErr: true,
		},
		{
			name: "missing base url is fatal",
			cfg: AddinteliConfig{
				Mode:    "prod",
				Prod:    CarrierEndpoint{Token: "prod-token"},
			},
			wantErr: true,
		},
		{
			name:    "unknown mode is fatal",
			cfg:     AddinteliConfig{Mode: "staging"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := tt.cfg.Resolve()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfiguration))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, ep.BaseURL)
		})
	}
}
