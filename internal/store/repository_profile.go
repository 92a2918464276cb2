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

// profileRepository keeps the single profile document per account.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository].
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: logger}
}

// GetProfile returns [ErrProfileNotFound] when the account never stored a
// profile.
func (r *profileRepository) GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	profile, err := scanProfile(r.db.QueryRowContext(ctx, selectProfile, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FitnessProfile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "profileRepository.GetProfile").
			Int64("account_id", accountID).
			Msg("failed to read profile")
		return models.FitnessProfile{}, err
	}
	return profile, nil
}

// UpsertProfile creates the profile document on first write and replaces
// its fields afterwards. CreatedAt is never changed by an update.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error) {
	log := logger.FromContext(ctx)

	prefs, err := json.Marshal(profile.Preferences)
	if err != nil {
		return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	var saved models.FitnessProfile
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		saved, scanErr = scanProfile(r.db.QueryRowContext(ctx, upsertProfile, profile.AccountID, profile.DisplayName, string(prefs)))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpsertProfile").
			Int64("account_id", profile.AccountID).
			Msg("failed to upsert profile")
		return models.FitnessProfile{}, err
	}

	return saved, nil
}

func scanProfile(row rowScanner) (models.FitnessProfile, error) {
	var (
		profile              models.FitnessProfile
		prefs                []byte
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(&profile.AccountID, &profile.DisplayName, &prefs, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FitnessProfile{}, err
		}
		return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &profile.Preferences); err != nil {
			return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
	}
	profile.CreatedAt = nullTimePtr(createdAt)
	profile.UpdatedAt = nullTimePtr(updatedAt)

	return profile, nil
}
