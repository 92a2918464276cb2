// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// localSessionRepository keeps at most one signed-in session in the local
// store.
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := r.db.ExecContext(ctx, upsertSession, session.AccountID, session.Login, session.Token, session.SignedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("account_id", session.AccountID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, selectSession).Scan(&session.AccountID, &session.Login, &session.Token, &session.SignedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
