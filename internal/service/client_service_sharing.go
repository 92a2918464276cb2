// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type sharingService struct {
	days     store.LocalDayRepository
	remote   adapter.RemoteStore
	workouts WorkoutService

	logger *logger.Logger
}

func NewSharingService(days store.LocalDayRepository, remote adapter.RemoteStore, workouts WorkoutService, logger *logger.Logger) SharingService {
	return &sharingService{
		days:     days,
		remote:   remote,
		workouts: workouts,
		logger:   logger,
	}
}

func (s *sharingService) Share(ctx context.Context, accountID int64, key models.DayKey) (string, error) {
	day, err := s.days.GetDayGraph(ctx, accountID, key)
	if err != nil {
		return "", fmt.Errorf("reading day %s: %w", key, err)
	}

	recordID, err := s.remote.PublishRecord(ctx, day.ToSnapshot())
	if err != nil {
		return "", fmt.Errorf("publishing day %s: %w", key, err)
	}

	s.logger.Info().Int64("account_id", accountID).Str("day", key.String()).Str("record_id", recordID).Msg("day shared")
	return recordID, nil
}

// Import stores a shared day as a new local day of accountID. A day already
// present under the same natural key is left untouched.
func (s *sharingService) Import(ctx context.Context, accountID int64, recordID string) (models.MergeResult, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return models.MergeResult{}, ErrInvalidDataProvided
	}

	snapshot, err := s.remote.FetchPublicRecord(ctx, recordID)
	if err != nil {
		return models.MergeResult{}, fmt.Errorf("fetching public record: %w", err)
	}

	day := snapshot.ToDayRecord(accountID)
	day.ClientSideID = ""

	var result models.MergeResult
	if _, err = s.workouts.RecordDay(ctx, day); err != nil {
		if errors.Is(err, store.ErrDayAlreadyExists) {
			result.AlreadyPresent = append(result.AlreadyPresent, day.Key())
			return result, nil
		}
		return models.MergeResult{}, err
	}

	result.Inserted = append(result.Inserted, day.Key())
	return result, nil
}
