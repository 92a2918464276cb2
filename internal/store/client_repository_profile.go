// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type localProfileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalProfileRepository constructs a [LocalProfileRepository].
func NewLocalProfileRepository(db *DB, logger *logger.Logger) LocalProfileRepository {
	return &localProfileRepository{db: db, logger: logger}
}

func (r *localProfileRepository) GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	var (
		profile              models.FitnessProfile
		prefs                string
		createdAt, updatedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, selectLocalProfile, accountID).
		Scan(&profile.AccountID, &profile.DisplayName, &prefs, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FitnessProfile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localProfileRepository.GetProfile").
			Int64("account_id", accountID).
			Msg("failed to read local profile")
		return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(prefs), &profile.Preferences); err != nil {
		return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	profile.CreatedAt = nullTimePtr(createdAt)
	profile.UpdatedAt = nullTimePtr(updatedAt)

	return profile, nil
}

func (r *localProfileRepository) SaveProfile(ctx context.Context, profile models.FitnessProfile) error {
	prefs, err := json.Marshal(profile.Preferences)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	_, err = r.db.ExecContext(ctx, upsertLocalProfile,
		profile.AccountID,
		profile.DisplayName,
		string(prefs),
		updatedAtOrNow(profile.CreatedAt),
		updatedAtOrNow(profile.UpdatedAt),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localProfileRepository.SaveProfile").
			Int64("account_id", profile.AccountID).
			Msg("failed to save local profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
