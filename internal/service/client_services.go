// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

// ClientServices is the client's service layer. Watcher and Broadcaster are
// process-wide: the watcher outlives every sync session and is stopped on
// sign-out; the broadcaster carries the refresh signal to every screen.
type ClientServices struct {
	AuthService       ClientAuthService
	PreferenceService PreferenceService
	ProfileService    ProfileService
	WorkoutService    WorkoutService
	SharingService    SharingService
	MirrorService     MirrorService
	MirrorJob         ClientMirrorJob
	Merger            MergeReconciler
	Orchestrator      SyncOrchestrator
	Watcher           *ConvergenceWatcher
	Broadcaster       *Broadcaster
}

// ClientAdapters groups the remote collaborators of the client services.
type ClientAdapters struct {
	Auth        adapter.Authenticator
	Remote      adapter.RemoteStore
	Preferences adapter.PreferenceStore
}

// NewClientServices wires the client services. ctx bounds the lifetime of
// the background watcher.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, adapters ClientAdapters, cfg config.Sync, clock utils.Clock, logger *logger.Logger) *ClientServices {
	broadcaster := NewBroadcaster()

	preferences := NewClientPreferenceService(storages.PreferenceRepository, adapters.Preferences, clock, logger)
	profiles := NewClientProfileService(storages.ProfileRepository, storages.SessionRepository, adapters.Remote, preferences, clock, logger)
	workouts := NewWorkoutService(storages.DayRepository, clock, logger)
	merger := NewMergeReconciler(storages.DayRepository, logger)
	watcher := NewConvergenceWatcher(ctx, storages.DayRepository, broadcaster, cfg, clock, logger)
	mirror := NewMirrorService(storages.DayRepository, adapters.Remote, merger, preferences, logger)
	orchestrator := NewSyncOrchestrator(adapters.Remote, preferences, profiles, storages.DayRepository, merger, watcher, broadcaster, cfg, clock, logger)

	return &ClientServices{
		AuthService:       NewClientAuthService(adapters.Auth, storages.SessionRepository, logger),
		PreferenceService: preferences,
		ProfileService:    profiles,
		WorkoutService:    workouts,
		SharingService:    NewSharingService(storages.DayRepository, adapters.Remote, workouts, logger),
		MirrorService:     mirror,
		MirrorJob:         NewClientMirrorJob(mirror, logger),
		Merger:            merger,
		Orchestrator:      orchestrator,
		Watcher:           watcher,
		Broadcaster:       broadcaster,
	}
}
