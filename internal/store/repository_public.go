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

// publicRecordRepository stores shared day snapshots. Public records are
// immutable once published.
type publicRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPublicRecordRepository constructs a [PublicRecordRepository].
func NewPublicRecordRepository(db *DB, logger *logger.Logger) PublicRecordRepository {
	logger.Debug().Msg("creating public record repository")
	return &publicRecordRepository{db: db, logger: logger}
}

func (r *publicRecordRepository) Publish(ctx context.Context, recordID string, ownerAccountID int64, day models.WorkoutDaySnapshot) error {
	payload, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, insertPublicRecord, recordID, ownerAccountID, string(payload))
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "publicRecordRepository.Publish").
			Int64("account_id", ownerAccountID).
			Str("record_id", recordID).
			Msg("failed to publish record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetPublished returns [ErrPublicRecordNotFound] for unknown identifiers.
func (r *publicRecordRepository) GetPublished(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error) {
	var payload []byte

	err := r.db.QueryRowContext(ctx, selectPublicRecord, recordID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkoutDaySnapshot{}, ErrPublicRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "publicRecordRepository.GetPublished").
			Str("record_id", recordID).
			Msg("failed to read public record")
		return models.WorkoutDaySnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var day models.WorkoutDaySnapshot
	if err = json.Unmarshal(payload, &day); err != nil {
		return models.WorkoutDaySnapshot{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	day.RecordID = recordID

	return day, nil
}
