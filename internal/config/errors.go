// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an in-memory local store).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing hash key or token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSyncConfigs indicates an unusable synchronization budget.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
