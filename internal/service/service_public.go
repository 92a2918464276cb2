// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type publicRecordService struct {
	records   store.PublicRecordRepository
	ids       *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewPublicRecordService(records store.PublicRecordRepository, logger *logger.Logger) PublicRecordService {
	return &publicRecordService{
		records:   records,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewWorkoutValidator(),
		logger:    logger,
	}
}

// Publish copies day into the public partition under a fresh identifier.
// The owner's account id is kept on the record but stripped from the copy.
func (p *publicRecordService) Publish(ctx context.Context, accountID int64, day models.WorkoutDaySnapshot) (string, error) {
	if accountID <= 0 {
		return "", ErrValidationNoAccountID
	}
	if err := p.validator.Validate(ctx, day); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	recordID := p.ids.Generate()
	day.RecordID = recordID
	day.AccountID = 0

	if err := p.records.Publish(ctx, recordID, accountID, day); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Str("day", day.Key().String()).Msg("publishing day failed")
		return "", fmt.Errorf("publishing day failed: %w", err)
	}

	return recordID, nil
}

func (p *publicRecordService) Get(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error) {
	if strings.TrimSpace(recordID) == "" {
		return models.WorkoutDaySnapshot{}, ErrInvalidDataProvided
	}
	return p.records.GetPublished(ctx, recordID)
}
