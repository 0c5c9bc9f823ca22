// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultDBName         = "bookshelf"
	defaultVersion        = "dev"
	defaultTokenIssuer    = "go-bookshelf"
	defaultTokenDuration  = 24 * time.Hour
	defaultClientTimeout  = 10 * time.Second
	defaultAdapterAddress = "http://" + defaultHTTPAddress
)

// applyDefaults fills the fields left empty by every configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = defaultDBName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.TokenSignKey != "" {
		if cfg.App.TokenIssuer == "" {
			cfg.App.TokenIssuer = defaultTokenIssuer
		}
		if cfg.App.TokenDuration == 0 {
			cfg.App.TokenDuration = defaultTokenDuration
		}
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
}
