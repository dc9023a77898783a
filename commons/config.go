// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8001"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	DNSTimeout time.Duration `env:"DNS_TIMEOUT" envDefault:"2s"`
	DNSServers []string      `env:"DNS_SERVERS" envSeparator:","`

	PhoneFallbackRegions []string `env:"PHONE_FALLBACK_REGIONS" envDefault:"US,IT" envSeparator:","`
	PhoneLocale          string   `env:"PHONE_LOCALE" envDefault:"en"`
	CarrierDataPath      string   `env:"CARRIER_DATA_PATH"`

	ReferenceDataPath string `env:"REFERENCE_DATA_PATH"`

	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Reserved for an external email verification provider. Not used yet.
	EmailValidationAPIKey string `env:"EMAIL_VALIDATION_API_KEY"`
}

func LoadConfig() (Config, error) {
	LoadEnvFile()
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.DNSTimeout <= 0 {
		return Config{}, fmt.Errorf("DNS_TIMEOUT must be positive, got %s", cfg.DNSTimeout)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// ListenAddr returns the port in the ":port" form expected by echo.
func (c Config) ListenAddr() string {
	port := c.Port
	if port == "" {
		port = "8001"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}
