// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// localPreferenceRepository is the local config table. It is the
// authoritative read surface for preferences; the replicated store is only
// written behind it.
type localPreferenceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalPreferenceRepository constructs a [LocalPreferenceRepository].
func NewLocalPreferenceRepository(db *DB, logger *logger.Logger) LocalPreferenceRepository {
	return &localPreferenceRepository{db: db, logger: logger}
}

// GetPreferences returns [ErrPreferencesNotFound] when the account has no
// local row yet.
func (r *localPreferenceRepository) GetPreferences(ctx context.Context, accountID int64) (models.LocalPreferences, error) {
	var (
		local     models.LocalPreferences
		updatedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, selectLocalPreferences, accountID).Scan(
		&local.AccountID,
		&local.Preferences.Goal,
		&local.Preferences.Equipment,
		&local.Preferences.ExperienceLevel,
		&local.Preferences.TrainingDaysPerWeek,
		&local.Preferences.Completed,
		&local.Revision,
		&local.Dirty,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalPreferences{}, ErrPreferencesNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPreferenceRepository.GetPreferences").
			Int64("account_id", accountID).
			Msg("failed to read local preferences")
		return models.LocalPreferences{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		local.Preferences.UpdatedAt = &t
	}

	return local, nil
}

func (r *localPreferenceRepository) SaveLocal(ctx context.Context, accountID int64, prefs models.FitnessPreferences) error {
	_, err := r.db.ExecContext(ctx, upsertLocalPreferences,
		accountID,
		prefs.Goal,
		prefs.Equipment,
		prefs.ExperienceLevel,
		prefs.TrainingDaysPerWeek,
		prefs.Completed,
		updatedAtOrNow(prefs.UpdatedAt),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPreferenceRepository.SaveLocal").
			Int64("account_id", accountID).
			Msg("failed to save local preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localPreferenceRepository) ApplyRemote(ctx context.Context, accountID int64, prefs models.FitnessPreferences, revision int64) error {
	_, err := r.db.ExecContext(ctx, upsertRemotePreferences,
		accountID,
		prefs.Goal,
		prefs.Equipment,
		prefs.ExperienceLevel,
		prefs.TrainingDaysPerWeek,
		prefs.Completed,
		revision,
		updatedAtOrNow(prefs.UpdatedAt),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPreferenceRepository.ApplyRemote").
			Int64("account_id", accountID).
			Int64("revision", revision).
			Msg("failed to apply remote preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func updatedAtOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
