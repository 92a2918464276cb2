// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. All repositories share
// one SQLite connection.
type ClientStorages struct {
	DB *DB

	// DayRepository is the local transactional store of workout days.
	DayRepository LocalDayRepository

	// SessionRepository keeps the signed-in session.
	SessionRepository LocalSessionRepository

	// PreferenceRepository is the local config table.
	PreferenceRepository LocalPreferenceRepository

	// ProfileRepository caches the fitness profile document.
	ProfileRepository LocalProfileRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.Path, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires every local repository to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires the local repositories to an already
// migrated connection.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:                   db,
		DayRepository:        NewLocalDayRepository(db, logger),
		SessionRepository:    NewLocalSessionRepository(db, logger),
		PreferenceRepository: NewLocalPreferenceRepository(db, logger),
		ProfileRepository:    NewLocalProfileRepository(db, logger),
	}
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
