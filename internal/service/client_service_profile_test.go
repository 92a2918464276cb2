// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/mock"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type profileMocks struct {
	local    *mock.MockLocalProfileRepository
	sessions *mock.MockLocalSessionRepository
	remote   *mock.MockRemoteStore
}

func newTestProfileService(t *testing.T, clock utils.Clock) (ProfileService, profileMocks) {
	ctrl := gomock.NewController(t)
	m := profileMocks{
		local:    mock.NewMockLocalProfileRepository(ctrl),
		sessions: mock.NewMockLocalSessionRepository(ctrl),
		remote:   mock.NewMockRemoteStore(ctrl),
	}
	return NewClientProfileService(m.local, m.sessions, m.remote, &fakePreferences{}, clock, logger.Nop()), m
}

func TestClientProfileService_SyncStoresRemoteProfile(t *testing.T) {
	svc, m := newTestProfileService(t, newFakeClock(2*time.Second))
	remote := &models.FitnessProfile{AccountID: 1, DisplayName: "rasul", Preferences: strengthPrefs()}

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).Return(remote, nil)
	m.local.EXPECT().SaveProfile(gomock.Any(), *remote).Return(nil)

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	require.NoError(t, err)
	assert.Equal(t, *remote, got)
}

func TestClientProfileService_SyncPushesLocalProfile(t *testing.T) {
	svc, m := newTestProfileService(t, newFakeClock(2*time.Second))
	local := models.FitnessProfile{AccountID: 1, DisplayName: "rasul"}

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).Return(nil, nil)
	m.local.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(local, nil)
	m.remote.EXPECT().SaveProfile(gomock.Any(), local).Return(nil)
	m.local.EXPECT().SaveProfile(gomock.Any(), local).Return(nil)

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	require.NoError(t, err)
	assert.Equal(t, local, got)
}

func TestClientProfileService_SyncCreatesFirstProfile(t *testing.T) {
	clock := newFakeClock(2 * time.Second)
	svc, m := newTestProfileService(t, clock)
	now := clock.Now()
	want := models.FitnessProfile{
		AccountID:   1,
		DisplayName: "rasul",
		Preferences: models.DefaultFitnessPreferences(),
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).Return(nil, nil)
	m.local.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(models.FitnessProfile{}, store.ErrProfileNotFound)
	m.sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{AccountID: 1, Login: "rasul"}, nil)
	m.remote.EXPECT().SaveProfile(gomock.Any(), want).Return(nil)
	m.local.EXPECT().SaveProfile(gomock.Any(), want).Return(nil)

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientProfileService_SyncTimeoutReturnsLocal(t *testing.T) {
	svc, m := newTestProfileService(t, newFakeClock())
	release := make(chan struct{})
	defer close(release)
	local := models.FitnessProfile{AccountID: 1, DisplayName: "cached"}

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (*models.FitnessProfile, error) {
		<-release
		return nil, nil
	})
	m.local.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(local, nil)

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	assert.ErrorIs(t, err, ErrAdvisoryTimeout)
	assert.Equal(t, local, got)
}

func TestClientProfileService_SyncRemoteError(t *testing.T) {
	svc, m := newTestProfileService(t, newFakeClock(2*time.Second))

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).Return(nil, adapter.ErrRemoteUnavailable)
	m.local.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(models.FitnessProfile{}, store.ErrProfileNotFound)

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
	assert.Equal(t, int64(1), got.AccountID)
}

func TestClientProfileService_Save(t *testing.T) {
	clock := newFakeClock()
	svc, m := newTestProfileService(t, clock)

	assert.ErrorIs(t, svc.Save(context.Background(), models.FitnessProfile{}), ErrValidationNoAccountID)

	m.local.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p models.FitnessProfile) error {
		require.NotNil(t, p.UpdatedAt)
		assert.Equal(t, clock.Now(), *p.UpdatedAt)
		return nil
	})
	m.remote.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(adapter.ErrRemoteUnavailable)

	err := svc.Save(context.Background(), models.FitnessProfile{AccountID: 1, DisplayName: "new"})
	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
}

func TestClientProfileService_SyncBoundsProfileCreation(t *testing.T) {
	// the fetch wins its race, the creation loses it
	svc, m := newTestProfileService(t, newStepClock(1))
	release := make(chan struct{})
	cached := make(chan struct{})
	local := models.FitnessProfile{AccountID: 1, DisplayName: "cached"}

	m.remote.EXPECT().FetchProfile(gomock.Any(), int64(1)).Return(nil, nil)
	m.local.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(local, nil)
	m.remote.EXPECT().SaveProfile(gomock.Any(), local).DoAndReturn(func(context.Context, models.FitnessProfile) error {
		<-release
		return nil
	})
	m.local.EXPECT().SaveProfile(gomock.Any(), local).DoAndReturn(func(context.Context, models.FitnessProfile) error {
		close(cached)
		return nil
	})

	got, err := svc.Sync(context.Background(), 1, 2*time.Second)

	assert.ErrorIs(t, err, ErrAdvisoryTimeout)
	assert.Equal(t, local, got)

	close(release)
	select {
	case <-cached:
	case <-time.After(time.Second):
		t.Fatal("background profile creation did not finish")
	}
}
