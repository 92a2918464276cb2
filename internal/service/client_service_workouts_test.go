// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func TestWorkoutService_RecordDay(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()
	svc := NewWorkoutService(storages.DayRepository, newFakeClock(), logger.Nop())

	day := testSnapshot("", "2026-10-19", " Push ", " PPL ").ToDayRecord(1)
	day.Mirrored = true

	got, err := svc.RecordDay(ctx, day)
	require.NoError(t, err)

	assert.NotZero(t, got.ID)
	assert.NotEmpty(t, got.ClientSideID)
	assert.False(t, got.Mirrored, "new days wait for the mirror job")
	assert.Equal(t, "Push", got.DayName)
	require.NotNil(t, got.SplitID)

	stored, err := storages.DayRepository.GetDayGraph(ctx, 1, models.DayKey{DateKey: "2026-10-19", DayName: "Push"})
	require.NoError(t, err)
	assert.Equal(t, "PPL", stored.SplitName)
	assert.Equal(t, got.ContentHash, stored.ContentHash)

	_, err = svc.RecordDay(ctx, day)
	assert.ErrorIs(t, err, store.ErrDayAlreadyExists)

	second := testSnapshot("", "2026-10-21", "Pull", "PPL").ToDayRecord(1)
	_, err = svc.RecordDay(ctx, second)
	require.NoError(t, err)

	splits, err := storages.DayRepository.ListSplits(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, splits, 1, "split is reused by name")

	days, err := svc.Days(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	graph, err := svc.Day(ctx, 1, models.DayKey{DateKey: " 2026-10-21", DayName: "Pull "})
	require.NoError(t, err)
	assert.Equal(t, "Pull", graph.DayName)
	assert.Len(t, graph.Exercises, len(second.Exercises))
}

func TestWorkoutService_RecordDayValidation(t *testing.T) {
	svc := NewWorkoutService(newTestClientStorages(t).DayRepository, newFakeClock(), logger.Nop())

	tests := []struct {
		name    string
		day     models.DayRecord
		wantErr error
	}{
		{name: "no account", day: models.DayRecord{DateKey: "2026-10-19", DayName: "Push"}, wantErr: ErrValidationNoAccountID},
		{name: "bad date", day: models.DayRecord{AccountID: 1, DateKey: "19.10.2026", DayName: "Push"}, wantErr: ErrInvalidDataProvided},
		{name: "no name", day: models.DayRecord{AccountID: 1, DateKey: "2026-10-19"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordDay(context.Background(), tt.day)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
