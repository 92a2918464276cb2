// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the client's local store (SQLite)
// and of the server database (PostgreSQL) and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and file system in package state.
var gooseMu sync.Mutex

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// MigrateSQLite applies the local store schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", "sqlite")
}

// MigratePostgres applies the server schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", "postgres")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
