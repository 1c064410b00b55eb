package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server endpoint the client talks to,
	// e.g. "http://localhost:8080".
	BaseURL string `env:"BASE_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration for the terminal client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from environment variables
// and command-line flags, applies defaults, and validates the result.
//
// Flags:
//
//	-s server base URL (e.g. "http://localhost:8080")
//	-request-timeout outbound request timeout (e.g. "15s")
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	var baseURL string
	var requestTimeout time.Duration
	flag.StringVar(&baseURL, "s", "", "Server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.Parse()

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = baseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = requestTimeout
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return cfg, cfg.validate()
}
