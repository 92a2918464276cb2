// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type recordService struct {
	profiles store.ProfileRepository
	records  store.PrivateRecordRepository

	logger *logger.Logger
}

func NewRecordService(profiles store.ProfileRepository, records store.PrivateRecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		profiles: profiles,
		records:  records,
		logger:   logger,
	}
}

func (r *recordService) GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	return r.profiles.GetProfile(ctx, accountID)
}

func (r *recordService) SaveProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error) {
	return r.profiles.UpsertProfile(ctx, profile)
}

func (r *recordService) ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error) {
	return r.records.ListDays(ctx, accountID)
}

// UploadDays stamps every day with the caller's account before storing it.
func (r *recordService) UploadDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error {
	for i := range days {
		days[i].AccountID = accountID
	}

	if err := r.records.UpsertDays(ctx, accountID, days); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Int("days", len(days)).Msg("storing days failed")
		return fmt.Errorf("storing days failed: %w", err)
	}
	return nil
}

func (r *recordService) ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error) {
	return r.records.ListSplits(ctx, accountID)
}

func (r *recordService) UploadSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error {
	for i := range splits {
		splits[i].AccountID = accountID
	}

	if err := r.records.UpsertSplits(ctx, accountID, splits); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Int("splits", len(splits)).Msg("storing splits failed")
		return fmt.Errorf("storing splits failed: %w", err)
	}
	return nil
}
