package config

import (
	"errors"
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "localhost:5000"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ErrInvalidClientConfigs indicates missing or invalid client settings.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig holds settings for the command-line API client.
// Values come from defaults overridden by environment variables.
type ClientConfig struct {
	// ServerAddress is the base address of the authentication API
	// (e.g. "localhost:5000" or "https://auth.example.com").
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"CLIENT_SERVER_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`

	// Token is a previously issued JWT used by commands that need a session.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN" json:"-"`
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
	}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
