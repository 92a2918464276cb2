// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used for upload integrity checks.
	HashKey string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	RetryCount      int
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Path is the local SQLite database file.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    Sync
	Workers Workers
	Account Account
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	return clientCfg, clientCfg.validate()
}

// Client projects the client-relevant fields.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			RetryCount:      cfg.Adapter.RetryCount,
			BreakerFailures: cfg.Adapter.BreakerFailures,
			BreakerTimeout:  cfg.Adapter.BreakerTimeout,
		},
		Storage: ClientStorage{Path: cfg.Storage.Local.Path},
		Sync:    cfg.Sync,
		Workers: cfg.Workers,
		Account: cfg.Account,
	}
}
