package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultClientTimeout = 10 * time.Second

// ErrInvalidClientConfigs indicates a missing server address or session token.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// Client holds settings of the command-line note client.
type Client struct {
	// ServerAddress is the note store address, with or without scheme.
	// Env: NOTE_CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Token is the signed session token sent as a bearer token.
	// Env: NOTE_CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// SourceID is sent as X-Source-ID with every request.
	// Env: NOTE_CLIENT_SOURCE_ID
	SourceID string `env:"SOURCE_ID"`

	// RequestTimeout bounds a single call to the server.
	// Env: NOTE_CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig reads the client settings from NOTE_CLIENT_* environment
// variables.
func GetClientConfig() (*Client, error) {
	cfg := &Client{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NOTE_CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultClientTimeout
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultHTTPAddress
	}
	if cfg.Token == "" || cfg.RequestTimeout < 0 {
		return nil, ErrInvalidClientConfigs
	}

	return cfg, nil
}
