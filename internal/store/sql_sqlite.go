// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/migrations"
)

const inMemoryPath = ":memory:"

// NewConnectSQLite opens the local transactional store. The database file is
// created next to its parent directories when missing; ":memory:" opens a
// private in-memory database limited to a single connection.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.Path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serializes writers; one connection keeps transactions and the
	// in-memory database consistent
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("connected to database successfully")

	// construct a DB struct
	return &DB{
		DB:          conn,
		placeholder: sq.Question,
		migrate:     migrations.MigrateSQLite,
		logger:      log,
	}, nil
}

func sqliteDSN(path string) string {
	params := "_foreign_keys=on&_busy_timeout=5000"
	if path == inMemoryPath || path == "" {
		return "file::memory:?" + params
	}
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?" + params
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == inMemoryPath || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
