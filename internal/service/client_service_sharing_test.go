// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/mock"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func TestSharingService_Share(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()
	seedLocalDay(t, storages, testSnapshot("", "2026-10-19", "Push", "PPL"))

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().PublishRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, day models.WorkoutDaySnapshot) (string, error) {
		assert.Equal(t, "PPL", day.SplitName)
		assert.Len(t, day.Exercises, 2)
		return "public-1", nil
	})

	workouts := NewWorkoutService(storages.DayRepository, newFakeClock(), logger.Nop())
	svc := NewSharingService(storages.DayRepository, remote, workouts, logger.Nop())

	id, err := svc.Share(ctx, 1, models.DayKey{DateKey: "2026-10-19", DayName: "Push"})
	require.NoError(t, err)
	assert.Equal(t, "public-1", id)

	_, err = svc.Share(ctx, 1, models.DayKey{DateKey: "2026-10-20", DayName: "Push"})
	assert.Error(t, err)
}

func TestSharingService_Import(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	shared := testSnapshot("public-1", "2026-10-19", "Legs", "Friend's plan")
	remote.EXPECT().FetchPublicRecord(gomock.Any(), "public-1").Return(shared, nil).Times(2)
	remote.EXPECT().FetchPublicRecord(gomock.Any(), "missing").Return(models.WorkoutDaySnapshot{}, adapter.ErrNotFound)

	workouts := NewWorkoutService(storages.DayRepository, newFakeClock(), logger.Nop())
	svc := NewSharingService(storages.DayRepository, remote, workouts, logger.Nop())

	first, err := svc.Import(ctx, 2, " public-1 ")
	require.NoError(t, err)
	assert.Equal(t, []models.DayKey{shared.Key()}, first.Inserted)

	second, err := svc.Import(ctx, 2, "public-1")
	require.NoError(t, err)
	assert.Empty(t, second.Inserted)
	assert.Equal(t, []models.DayKey{shared.Key()}, second.AlreadyPresent)

	stored, err := storages.DayRepository.GetDayGraph(ctx, 2, shared.Key())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.AccountID)
	assert.False(t, stored.Mirrored, "imported days are mirrored like local ones")
	assert.Equal(t, "Friend's plan", stored.SplitName)

	_, err = svc.Import(ctx, 2, "missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	_, err = svc.Import(ctx, 2, "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
