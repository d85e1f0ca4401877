package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
)

type Config struct {
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Addinteli AddinteliConfig `koanf:"addinteli"`
	Redis     RedisConfig     `koanf:"redis"`
}

// AddinteliConfig holds the carrier API settings. Base URL and bearer token
// are kept per mode; Resolve picks the pair for the configured mode.
type AddinteliConfig struct {
	Mode          string        `koanf:"mode"` // sandbox | prod
	DistributorID string        `koanf:"distributor_id"`
	WalletID      string        `koanf:"wallet_id"`
	RetryTotal    int           `koanf:"retry_total"`
	Timeout       time.Duration `koanf:"timeout"`
	RateLimitRPS  int           `koanf:"rate_limit_rps"`

	Sandbox CarrierEndpoint `koanf:"sandbox"`
	Prod    CarrierEndpoint `koanf:"prod"`
}

// CarrierEndpoint is one mode's base URL and credential.
type CarrierEndpoint struct {
	BaseURL string `koanf:"base_url"`
	Token   string `koanf:"token"`
}

type RedisConfig struct {
	URL          string        `koanf:"url"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db"`
	PoolSize     int           `koanf:"pool_size"`
	MinIdleConns int           `koanf:"min_idle_conns"`
	MaxRetries   int           `koanf:"max_retries"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	CatalogTTL   time.Duration `koanf:"catalog_ttl"`
}

// Resolve returns the endpoint for the configured mode. Missing base URL or
// token is a fatal configuration error, surfaced before any request is made.
func (a AddinteliConfig) Resolve() (CarrierEndpoint, error) {
	var ep CarrierEndpoint
	switch a.Mode {
	case "sandbox":
		ep = a.Sandbox
	case "prod":
		ep = a.Prod
	default:
		return CarrierEndpoint{}, apperrors.NewConfigurationError(
			fmt.Sprintf("unknown addinteli mode %q", a.Mode))
	}

	if ep.BaseURL == "" || ep.Token == "" {
		return CarrierEndpoint{}, apperrors.NewConfigurationError(
			fmt.Sprintf("missing API configuration for mode %q", a.Mode))
	}
	return ep, nil
}

func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		Environment: "development",
		LogLevel:    "info",
		Addinteli: AddinteliConfig{
			Mode:         "sandbox",
			RetryTotal:   3,
			Timeout:      10 * time.Second,
			RateLimitRPS: 10,
		},
		Redis: RedisConfig{
			DB:           0,
			PoolSize:     5,
			MinIdleConns: 1,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			CatalogTTL:   4 * time.Hour,
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Config file is optional.
	if err := k.Load(file.Provider("configs/config.yaml"), yaml.Parser()); err != nil {
		_ = err
	}

	// Override with environment variables. Double underscore separates
	// nesting levels so keys with underscores survive, e.g.
	// MEXARED_ADDINTELI__DISTRIBUTOR_ID -> addinteli.distributor_id.
	if err := k.Load(env.Provider("MEXARED_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "MEXARED_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
