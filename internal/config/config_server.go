// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage DB
	Server  Server
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ServerView projects the server-relevant fields.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage.DB,
		Server:  cfg.Server,
	}
}
