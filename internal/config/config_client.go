package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view of the command-line client.
type ClientConfig struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is how many times a 503 answer is retried.
	RetryCount int
	// TokenFile stores the bearer token between client runs.
	TokenFile string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the optional JSON file named by the
// CONFIG variable. Per-command flags are handled by the client itself.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Adapter.BaseURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		RetryCount:     cfg.Adapter.RetryCount,
		TokenFile:      cfg.Adapter.TokenFile,
		LogLevel:       cfg.App.LogLevel,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
