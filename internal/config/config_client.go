package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the bookshelf server.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientApp holds application settings shared with the server.
type ClientApp struct {
	// HashKey signs request bodies with the HashSHA256 header when non-empty.
	HashKey string
}

// ClientConfig is the client configuration assembled from environment
// variables and an optional configuration file. The client does not read the
// server flags: its command line belongs to the CLI.
type ClientConfig struct {
	Adapter ClientAdapter
	App     ClientApp
}

// GetClientConfig builds and validates the client configuration. configPath,
// when non-empty, overrides the CONFIG environment variable.
func GetClientConfig(configPath string) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	if configPath != "" {
		b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: configPath})
	}

	cfg, err := b.withFile().buildUnchecked()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		App: ClientApp{HashKey: cfg.App.HashKey},
	}

	return clientCfg, clientCfg.validate()
}
