// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type mirrorService struct {
	days        store.LocalDayRepository
	remote      adapter.RemoteStore
	merger      MergeReconciler
	preferences PreferenceService

	logger *logger.Logger
}

func NewMirrorService(days store.LocalDayRepository, remote adapter.RemoteStore, merger MergeReconciler, preferences PreferenceService, logger *logger.Logger) MirrorService {
	return &mirrorService{
		days:        days,
		remote:      remote,
		merger:      merger,
		preferences: preferences,
		logger:      logger,
	}
}

// Mirror pushes first so that a day recorded offline reaches the private
// partition before the pull merges anything back.
func (m *mirrorService) Mirror(ctx context.Context, accountID int64) (result models.MergeResult, err error) {
	defer func() { metrics.RecordMirrorRun(err) }()

	if !m.remote.IsAvailable(ctx) {
		return models.MergeResult{}, adapter.ErrRemoteUnavailable
	}

	if err = m.push(ctx, accountID); err != nil {
		return models.MergeResult{}, err
	}

	result, err = m.pull(ctx, accountID)
	if err != nil {
		return models.MergeResult{}, err
	}

	if err = m.preferences.Replicate(ctx, accountID); err != nil {
		// preferences are retried on the next run
		m.logger.Warn().Err(err).Int64("account_id", accountID).Msg("preference replication failed")
		err = nil
	}

	return result, nil
}

func (m *mirrorService) push(ctx context.Context, accountID int64) error {
	splits, err := m.days.ListSplits(ctx, accountID)
	if err != nil {
		return fmt.Errorf("listing local splits: %w", err)
	}
	splitSnapshots := make([]models.SplitSnapshot, 0, len(splits))
	for _, split := range splits {
		splitSnapshots = append(splitSnapshots, split.ToSnapshot())
	}
	if err = m.remote.UploadSplitSnapshots(ctx, accountID, splitSnapshots); err != nil {
		return fmt.Errorf("uploading splits: %w", err)
	}

	days, err := m.days.ListUnmirrored(ctx, accountID)
	if err != nil {
		return fmt.Errorf("listing unmirrored days: %w", err)
	}
	if len(days) == 0 {
		return nil
	}

	daySnapshots := make([]models.WorkoutDaySnapshot, 0, len(days))
	ids := make([]int64, 0, len(days))
	for _, day := range days {
		daySnapshots = append(daySnapshots, day.ToSnapshot())
		ids = append(ids, day.ID)
	}
	if err = m.remote.UploadDaySnapshots(ctx, accountID, daySnapshots); err != nil {
		return fmt.Errorf("uploading days: %w", err)
	}

	if err = m.days.MarkMirrored(ctx, accountID, ids...); err != nil {
		return fmt.Errorf("marking days mirrored: %w", err)
	}

	m.logger.Debug().Int64("account_id", accountID).Int("days", len(days)).Int("splits", len(splits)).Msg("local days mirrored")
	return nil
}

func (m *mirrorService) pull(ctx context.Context, accountID int64) (models.MergeResult, error) {
	splits, err := m.remote.FetchSplitSnapshots(ctx, accountID)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return models.MergeResult{}, fmt.Errorf("fetching remote splits: %w", err)
	}

	days, err := m.remote.FetchDaySnapshots(ctx, accountID)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return models.MergeResult{}, fmt.Errorf("fetching remote days: %w", err)
	}
	if len(days) == 0 && len(splits) == 0 {
		return models.MergeResult{}, nil
	}

	return m.merger.Merge(ctx, accountID, models.RemoteSnapshot{Splits: splits, Days: days})
}
