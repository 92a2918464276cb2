// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// RecordValidationService rejects malformed records before they reach the
// wrapped RecordService. Reads pass through unchanged.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewWorkoutValidator(),
	}
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	if accountID <= 0 {
		return models.FitnessProfile{}, ErrValidationNoAccountID
	}
	return v.inner.GetProfile(ctx, accountID)
}

func (v *RecordValidationService) SaveProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error) {
	if profile.AccountID <= 0 {
		return models.FitnessProfile{}, ErrValidationNoAccountID
	}
	if err := v.validator.Validate(ctx, profile.Preferences); err != nil {
		return models.FitnessProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SaveProfile(ctx, profile)
}

func (v *RecordValidationService) ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error) {
	if accountID <= 0 {
		return nil, ErrValidationNoAccountID
	}
	return v.inner.ListDays(ctx, accountID)
}

func (v *RecordValidationService) UploadDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error {
	if accountID <= 0 {
		return ErrValidationNoAccountID
	}
	if len(days) == 0 {
		return ErrValidationNoDaysProvided
	}
	for i, day := range days {
		if day.AccountID != 0 && day.AccountID != accountID {
			return fmt.Errorf("%w: day at index %d", ErrForeignAccountData, i)
		}
	}
	if err := v.validator.Validate(ctx, days); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationInvalidDayKey, err)
	}
	return v.inner.UploadDays(ctx, accountID, days)
}

func (v *RecordValidationService) ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error) {
	if accountID <= 0 {
		return nil, ErrValidationNoAccountID
	}
	return v.inner.ListSplits(ctx, accountID)
}

func (v *RecordValidationService) UploadSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error {
	if accountID <= 0 {
		return ErrValidationNoAccountID
	}
	if len(splits) == 0 {
		return ErrValidationNoSplitsProvided
	}
	for i, split := range splits {
		if split.AccountID != 0 && split.AccountID != accountID {
			return fmt.Errorf("%w: split at index %d", ErrForeignAccountData, i)
		}
	}
	if err := v.validator.Validate(ctx, splits); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UploadSplits(ctx, accountID, splits)
}
