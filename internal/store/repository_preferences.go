// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// preferenceDocumentRepository is the server side of the replicated
// preference store: one JSON document per account plus a revision counter
// that grows on every write.
type preferenceDocumentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPreferenceDocumentRepository constructs a [PreferenceDocumentRepository].
func NewPreferenceDocumentRepository(db *DB, logger *logger.Logger) PreferenceDocumentRepository {
	logger.Debug().Msg("creating preference document repository")
	return &preferenceDocumentRepository{db: db, logger: logger}
}

// GetDocument returns [ErrPreferencesNotFound] for an account that never
// wrote preferences.
func (r *preferenceDocumentRepository) GetDocument(ctx context.Context, accountID int64) (models.PreferenceDocument, error) {
	var (
		doc   models.PreferenceDocument
		prefs []byte
	)

	err := r.db.QueryRowContext(ctx, selectPreferenceDocument, accountID).Scan(&prefs, &doc.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PreferenceDocument{}, ErrPreferencesNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceDocumentRepository.GetDocument").
			Int64("account_id", accountID).
			Msg("failed to read preference document")
		return models.PreferenceDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(prefs, &doc.Preferences); err != nil {
		return models.PreferenceDocument{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return doc, nil
}

// PutDocument replaces the document and returns the new revision. A non-zero
// baseRevision that differs from the stored one yields [ErrRevisionConflict].
func (r *preferenceDocumentRepository) PutDocument(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(prefs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	var revision int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, putPreferenceDocument, accountID, string(payload), baseRevision).Scan(&revision)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "preferenceDocumentRepository.PutDocument").
			Int64("account_id", accountID).
			Int64("base_revision", baseRevision).
			Msg("stale base revision")
		return 0, ErrRevisionConflict
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferenceDocumentRepository.PutDocument").
			Int64("account_id", accountID).
			Msg("failed to write preference document")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return revision, nil
}

// Revision returns the stored revision, zero when no document exists.
func (r *preferenceDocumentRepository) Revision(ctx context.Context, accountID int64) (int64, error) {
	var revision int64
	if err := r.db.QueryRowContext(ctx, selectPreferenceRevision, accountID).Scan(&revision); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceDocumentRepository.Revision").
			Int64("account_id", accountID).
			Msg("failed to read preference revision")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return revision, nil
}
