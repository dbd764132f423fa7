package config

import (
	"fmt"
	"time"
)

// ClientConfig is the subset of configuration the CLI client needs.
type ClientConfig struct {
	Adapter ClientAdapter
}

// ClientAdapter describes how the client reaches the server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetClientConfig loads the client configuration from the environment and the
// optional JSON file (CONFIG). Command-line arguments belong to the client's
// sub-commands and are not read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
