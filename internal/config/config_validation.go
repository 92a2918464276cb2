// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.Path) == "" || strings.Contains(cfg.Storage.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.MirrorInterval <= 0 || cfg.Workers.PreferenceWatchInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Sync.Validate(); err != nil {
		return err
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// Validate checks that every budget is usable.
func (s Sync) Validate() error {
	switch {
	case s.PreferenceTimeout <= 0 || s.ProfileTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidSyncConfigs)
	case s.PollInterval <= 0 || s.PollAttempts <= 0:
		return fmt.Errorf("%w: poll interval and attempts must be positive", ErrInvalidSyncConfigs)
	case s.WatcherInterval <= 0 || s.WatcherAttempts <= 0:
		return fmt.Errorf("%w: watcher interval and attempts must be positive", ErrInvalidSyncConfigs)
	case s.MaxConsecutiveErrors <= 0:
		return fmt.Errorf("%w: error threshold must be positive", ErrInvalidSyncConfigs)
	case s.CompletionHold < 0:
		return fmt.Errorf("%w: completion hold must not be negative", ErrInvalidSyncConfigs)
	case s.ProgressFloor < 0 || s.ProgressCeiling > 1 || s.ProgressFloor >= s.ProgressCeiling:
		return fmt.Errorf("%w: progress range must satisfy 0 <= floor < ceiling <= 1", ErrInvalidSyncConfigs)
	}
	return nil
}
