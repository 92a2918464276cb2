// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// privateRecordRepository is the PostgreSQL-backed private partition. Day
// and split records are keyed by their natural key; re-uploading a record
// replaces its content and keeps the first record id.
type privateRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPrivateRecordRepository constructs a [PrivateRecordRepository].
func NewPrivateRecordRepository(db *DB, logger *logger.Logger) PrivateRecordRepository {
	logger.Debug().Msg("creating private record repository")
	return &privateRecordRepository{db: db, logger: logger}
}

// ListDays returns every day record of the account. An account without
// records yields an empty slice.
func (r *privateRecordRepository) ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPrivateDaysQuery(accountID)
	if err != nil {
		log.Err(err).Str("func", "privateRecordRepository.ListDays").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "privateRecordRepository.ListDays").
			Int64("account_id", accountID).
			Msg("failed to execute query for getting day records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make([]models.WorkoutDaySnapshot, 0, 50)
	for rows.Next() {
		var (
			day       models.WorkoutDaySnapshot
			exercises []byte
			updatedAt sql.NullTime
		)

		if err = rows.Scan(&day.RecordID, &day.AccountID, &day.DateKey, &day.DayName, &day.SplitName, &exercises, &updatedAt); err != nil {
			log.Err(err).
				Str("func", "privateRecordRepository.ListDays").
				Int64("account_id", accountID).
				Msg("failed to scan day row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if err = json.Unmarshal(exercises, &day.Exercises); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		day.UpdatedAt = nullTimePtr(updatedAt)

		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "privateRecordRepository.ListDays").
			Int64("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return days, nil
}

// UpsertDays stores all days in one transaction. A day without a record id
// gets a fresh one.
func (r *privateRecordRepository) UpsertDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error {
	if len(days) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return r.db.withRetry(ctx, func() error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			for i, day := range days {
				exercises, err := json.Marshal(nonNilExercises(day.Exercises))
				if err != nil {
					return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
				}

				key := day.Key()
				if _, err = tx.ExecContext(ctx, upsertPrivateDay,
					recordIDOrNew(day.RecordID),
					accountID,
					key.DateKey,
					key.DayName,
					strings.TrimSpace(day.SplitName),
					string(exercises),
				); err != nil {
					log.Err(err).
						Str("func", "privateRecordRepository.UpsertDays").
						Int64("account_id", accountID).
						Int("iteration", i).
						Str("day", key.String()).
						Msg("failed to upsert day record")
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			return nil
		})
	})
}

// ListSplits returns every split record of the account.
func (r *privateRecordRepository) ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPrivateSplitsQuery(accountID)
	if err != nil {
		log.Err(err).Str("func", "privateRecordRepository.ListSplits").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "privateRecordRepository.ListSplits").
			Int64("account_id", accountID).
			Msg("failed to execute query for getting split records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	splits := make([]models.SplitSnapshot, 0, 4)
	for rows.Next() {
		var (
			split     models.SplitSnapshot
			days      []byte
			updatedAt sql.NullTime
		)

		if err = rows.Scan(&split.RecordID, &split.AccountID, &split.Name, &days, &updatedAt); err != nil {
			log.Err(err).Str("func", "privateRecordRepository.ListSplits").Int64("account_id", accountID).Msg("failed to scan split row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if err = json.Unmarshal(days, &split.Days); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		split.UpdatedAt = nullTimePtr(updatedAt)

		splits = append(splits, split)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return splits, nil
}

// UpsertSplits stores all splits in one transaction.
func (r *privateRecordRepository) UpsertSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error {
	if len(splits) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return r.db.withRetry(ctx, func() error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			for i, split := range splits {
				days, err := json.Marshal(nonNilStrings(split.Days))
				if err != nil {
					return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
				}

				if _, err = tx.ExecContext(ctx, upsertPrivateSplit,
					recordIDOrNew(split.RecordID),
					accountID,
					strings.TrimSpace(split.Name),
					string(days),
				); err != nil {
					log.Err(err).
						Str("func", "privateRecordRepository.UpsertSplits").
						Int64("account_id", accountID).
						Int("iteration", i).
						Str("split", split.Name).
						Msg("failed to upsert split record")
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			return nil
		})
	})
}

func recordIDOrNew(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.NewString()
	}
	return id
}

func nonNilExercises(e []models.ExerciseSnapshot) []models.ExerciseSnapshot {
	if e == nil {
		return []models.ExerciseSnapshot{}
	}
	return e
}
