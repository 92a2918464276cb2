// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
)

// Storages groups the server repositories. All of them share one
// PostgreSQL connection pool.
type Storages struct {
	DB *DB

	UserRepository               UserRepository
	ProfileRepository            ProfileRepository
	PrivateRecordRepository      PrivateRecordRepository
	PreferenceDocumentRepository PreferenceDocumentRepository
	PublicRecordRepository       PublicRecordRepository
}

// NewServerStorages connects to PostgreSQL, applies migrations and wires every
// server repository.
func NewServerStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the server repositories to an open connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                           db,
		UserRepository:               NewUserRepository(db, logger),
		ProfileRepository:            NewProfileRepository(db, logger),
		PrivateRecordRepository:      NewPrivateRecordRepository(db, logger),
		PreferenceDocumentRepository: NewPreferenceDocumentRepository(db, logger),
		PublicRecordRepository:       NewPublicRecordRepository(db, logger),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
