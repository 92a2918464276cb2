// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/migrations"
)

// DB wraps a *sql.DB together with the dialect specific pieces every
// repository needs: the placeholder format used by squirrel builders and the
// error classifier used to decide whether a failed statement is retried.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	placeholder        sq.PlaceholderFormat
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// querier is the part of *sql.DB and *sql.Tx the repositories use, so that
// the same query helpers run inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Migrate applies the schema matching the connection dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return fmt.Errorf("migration error: %w", migrations.ErrNilDB)
	}
	return db.migrate(db.DB)
}

// builder returns a squirrel statement builder with the dialect placeholder.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// withRetry runs fn again while the classifier reports the failure as
// retryable. Without a classifier fn runs once.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	attempt := 0
	backoff := retry.WithMaxRetries(retryAttempts-1, retry.NewConstant(retryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")
		return retry.RetryableError(err)
	})
}

// inTx runs fn in a transaction, committing on success and rolling back on
// any error returned by fn.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.inTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "DB.inTx").Msg("failed to rollback transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.inTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
