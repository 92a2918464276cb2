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

func strengthPrefs() models.FitnessPreferences {
	return models.FitnessPreferences{
		Goal:                models.GoalStrength,
		Equipment:           models.EquipmentDumbbells,
		ExperienceLevel:     models.ExperienceIntermediate,
		TrainingDaysPerWeek: 4,
		Completed:           true,
	}
}

type preferenceMocks struct {
	local  *mock.MockLocalPreferenceRepository
	remote *mock.MockPreferenceStore
}

func newTestPreferenceService(t *testing.T, clock utils.Clock) (PreferenceService, preferenceMocks) {
	ctrl := gomock.NewController(t)
	m := preferenceMocks{
		local:  mock.NewMockLocalPreferenceRepository(ctrl),
		remote: mock.NewMockPreferenceStore(ctrl),
	}
	return NewClientPreferenceService(m.local, m.remote, clock, logger.Nop()), m
}

func TestClientPreferenceService_LocalDefaults(t *testing.T) {
	svc, m := newTestPreferenceService(t, newFakeClock())
	m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{}, store.ErrPreferencesNotFound)

	got, err := svc.Local(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.DefaultFitnessPreferences(), got)
}

func TestClientPreferenceService_SaveRejectsInvalid(t *testing.T) {
	svc, _ := newTestPreferenceService(t, newFakeClock())
	prefs := strengthPrefs()
	prefs.TrainingDaysPerWeek = 9

	err := svc.Save(context.Background(), 1, prefs)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientPreferenceService_SaveWritesLocallyThenReplicates(t *testing.T) {
	clock := newFakeClock()
	svc, m := newTestPreferenceService(t, clock)
	prefs := strengthPrefs()
	now := clock.Now()
	stamped := prefs
	stamped.UpdatedAt = &now

	gomock.InOrder(
		m.local.EXPECT().SaveLocal(gomock.Any(), int64(1), stamped).Return(nil),
		m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{AccountID: 1, Preferences: stamped, Revision: 3, Dirty: true}, nil),
		m.remote.EXPECT().Put(gomock.Any(), stamped, int64(3)).Return(int64(4), nil),
		m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), stamped, int64(4)).Return(nil),
	)

	require.NoError(t, svc.Save(context.Background(), 1, prefs))
}

func TestClientPreferenceService_SaveKeepsDirtyRowOnConflict(t *testing.T) {
	svc, m := newTestPreferenceService(t, newFakeClock())

	m.local.EXPECT().SaveLocal(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: strengthPrefs(), Revision: 3, Dirty: true}, nil)
	m.remote.EXPECT().Put(gomock.Any(), gomock.Any(), int64(3)).Return(int64(0), adapter.ErrConflict)

	assert.NoError(t, svc.Save(context.Background(), 1, strengthPrefs()))
}

func TestClientPreferenceService_ReplicateSkipsCleanRow(t *testing.T) {
	svc, m := newTestPreferenceService(t, newFakeClock())
	m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: strengthPrefs(), Revision: 3}, nil)

	assert.NoError(t, svc.Replicate(context.Background(), 1))
}

func TestClientPreferenceService_Pull(t *testing.T) {
	remotePrefs := strengthPrefs()
	localPrefs := models.DefaultFitnessPreferences()
	localPrefs.Completed = true

	tests := []struct {
		name    string
		prepare func(m preferenceMocks)
		want    models.FitnessPreferences
	}{
		{
			name: "remote document applied over clean local row",
			prepare: func(m preferenceMocks) {
				m.remote.EXPECT().Fetch(gomock.Any()).Return(models.PreferenceDocument{Preferences: remotePrefs, Revision: 5}, nil)
				m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: localPrefs, Revision: 4}, nil)
				m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), remotePrefs, int64(5)).Return(nil)
			},
			want: remotePrefs,
		},
		{
			name: "remote document wins over stale local edit",
			prepare: func(m preferenceMocks) {
				m.remote.EXPECT().Fetch(gomock.Any()).Return(models.PreferenceDocument{Preferences: remotePrefs, Revision: 5}, nil)
				m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: localPrefs, Revision: 4, Dirty: true}, nil)
				m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), remotePrefs, int64(5)).Return(nil)
			},
			want: remotePrefs,
		},
		{
			name: "local edit on current revision is pushed",
			prepare: func(m preferenceMocks) {
				m.remote.EXPECT().Fetch(gomock.Any()).Return(models.PreferenceDocument{Preferences: remotePrefs, Revision: 5}, nil)
				m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: localPrefs, Revision: 5, Dirty: true}, nil)
				m.remote.EXPECT().Put(gomock.Any(), localPrefs, int64(5)).Return(int64(6), nil)
				m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), localPrefs, int64(6)).Return(nil)
			},
			want: localPrefs,
		},
		{
			name: "empty store is seeded from local row",
			prepare: func(m preferenceMocks) {
				m.remote.EXPECT().Fetch(gomock.Any()).Return(models.PreferenceDocument{}, adapter.ErrNotFound)
				m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: localPrefs}, nil)
				m.remote.EXPECT().Put(gomock.Any(), localPrefs, int64(0)).Return(int64(1), nil)
				m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), localPrefs, int64(1)).Return(nil)
			},
			want: localPrefs,
		},
		{
			name: "nothing anywhere yields defaults",
			prepare: func(m preferenceMocks) {
				m.remote.EXPECT().Fetch(gomock.Any()).Return(models.PreferenceDocument{Revision: 2}, nil)
				m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{}, store.ErrPreferencesNotFound)
			},
			want: models.DefaultFitnessPreferences(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the budget never elapses so the fetch always wins
			svc, m := newTestPreferenceService(t, newFakeClock(2*time.Second))
			tt.prepare(m)

			got, err := svc.Pull(context.Background(), 1, 2*time.Second)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientPreferenceService_PullTimeoutKeepsLocal(t *testing.T) {
	svc, m := newTestPreferenceService(t, newFakeClock())
	release := make(chan struct{})
	defer close(release)

	m.remote.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (models.PreferenceDocument, error) {
		<-release
		return models.PreferenceDocument{}, nil
	})
	m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(models.LocalPreferences{Preferences: strengthPrefs()}, nil)

	got, err := svc.Pull(context.Background(), 1, 2*time.Second)

	assert.ErrorIs(t, err, ErrAdvisoryTimeout)
	assert.Equal(t, strengthPrefs(), got)
}

func TestClientPreferenceService_PullBoundsLocalPush(t *testing.T) {
	tests := []struct {
		name         string
		row          models.LocalPreferences
		baseRevision int64
	}{
		{name: "local edit on current revision", row: models.LocalPreferences{Preferences: strengthPrefs(), Revision: 5, Dirty: true}, baseRevision: 5},
		{name: "seeding an empty store", row: models.LocalPreferences{Preferences: strengthPrefs()}, baseRevision: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the fetch wins its race, the write loses it
			svc, m := newTestPreferenceService(t, newStepClock(1))
			release := make(chan struct{})
			written := make(chan struct{})

			doc := models.PreferenceDocument{Preferences: models.DefaultFitnessPreferences(), Revision: 5}
			if tt.baseRevision == 0 {
				doc = models.PreferenceDocument{}
			}
			m.remote.EXPECT().Fetch(gomock.Any()).Return(doc, nil)
			m.local.EXPECT().GetPreferences(gomock.Any(), int64(1)).Return(tt.row, nil)
			m.remote.EXPECT().Put(gomock.Any(), tt.row.Preferences, tt.baseRevision).DoAndReturn(
				func(context.Context, models.FitnessPreferences, int64) (int64, error) {
					<-release
					return tt.baseRevision + 1, nil
				})
			m.local.EXPECT().ApplyRemote(gomock.Any(), int64(1), tt.row.Preferences, tt.baseRevision+1).DoAndReturn(
				func(context.Context, int64, models.FitnessPreferences, int64) error {
					close(written)
					return nil
				})

			got, err := svc.Pull(context.Background(), 1, 2*time.Second)

			require.NoError(t, err)
			assert.Equal(t, tt.row.Preferences, got)

			// the write was left running and still lands
			close(release)
			select {
			case <-written:
			case <-time.After(time.Second):
				t.Fatal("background preference write did not finish")
			}
		})
	}
}
