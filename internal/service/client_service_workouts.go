// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type workoutService struct {
	days      store.LocalDayRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	clock     utils.Clock

	logger *logger.Logger
}

func NewWorkoutService(days store.LocalDayRepository, clock utils.Clock, logger *logger.Logger) WorkoutService {
	return &workoutService{
		days:      days,
		validator: validators.NewWorkoutValidator(),
		ids:       utils.NewUUIDGenerator(),
		clock:     clock,
		logger:    logger,
	}
}

// RecordDay stores day and creates its split when the name is new. The day
// is left unmirrored for the mirror job.
func (w *workoutService) RecordDay(ctx context.Context, day models.DayRecord) (models.DayRecord, error) {
	if day.AccountID <= 0 {
		return models.DayRecord{}, ErrValidationNoAccountID
	}
	if err := w.validator.Validate(ctx, day.ToSnapshot()); err != nil {
		return models.DayRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key := day.Key()
	day.DateKey, day.DayName = key.DateKey, key.DayName
	day.SplitName = strings.TrimSpace(day.SplitName)
	day.ContentHash = models.HashDay(day.SplitName, day.Exercises)
	day.Mirrored = false
	if day.ClientSideID == "" {
		day.ClientSideID = w.ids.Generate()
	}
	now := w.clock.Now()
	day.CreatedAt = &now

	err := w.days.RunInTx(ctx, func(tx store.LocalDayTx) error {
		if day.SplitName != "" {
			splitID, err := w.ensureSplit(ctx, tx, day.AccountID, day.SplitName, day.DayName)
			if err != nil {
				return err
			}
			day.SplitID = &splitID
		}

		id, err := tx.InsertDayGraph(ctx, day)
		if err != nil {
			return err
		}
		day.ID = id
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrDayAlreadyExists) {
			w.logger.Err(err).Int64("account_id", day.AccountID).Str("day", key.String()).Msg("recording day failed")
		}
		return models.DayRecord{}, err
	}

	return day, nil
}

func (w *workoutService) ensureSplit(ctx context.Context, tx store.LocalDayTx, accountID int64, name, dayName string) (int64, error) {
	split, err := tx.FindSplitByName(ctx, accountID, name)
	if err == nil {
		return split.ID, nil
	}
	if !errors.Is(err, store.ErrSplitNotFound) {
		return 0, err
	}

	return tx.InsertSplit(ctx, models.Split{
		ClientSideID: w.ids.Generate(),
		AccountID:    accountID,
		Name:         name,
		Days:         []string{dayName},
	})
}

func (w *workoutService) Days(ctx context.Context, accountID int64) ([]models.DayRecord, error) {
	return w.days.QueryDayRecords(ctx, accountID)
}

func (w *workoutService) Day(ctx context.Context, accountID int64, key models.DayKey) (models.DayRecord, error) {
	return w.days.GetDayGraph(ctx, accountID, key.Normalize())
}
