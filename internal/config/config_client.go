package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the notes API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// SessionDSN is the SQLite file holding the local session.
	SessionDSN string
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration. Arguments
// left over after flag parsing are returned as the command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDSN: cfg.Client.SessionDSN,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, rest, nil
}
