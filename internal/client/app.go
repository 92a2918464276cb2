// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/tui"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/workers"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type App struct {
	services    *service.ClientServices
	preferences adapter.PreferenceStore
	ui          UI
	cfg         *config.ClientConfig
	closer      func() error

	logger *logger.Logger
}

// NewApp opens the local store, builds the transport and the client
// services and attaches the terminal UI. ctx bounds the background watcher.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	transport, err := adapter.NewTransport(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create transport: %w", err)
	}

	preferences := adapter.NewHTTPPreferenceStore(transport)
	services := service.NewClientServices(ctx, storages, service.ClientAdapters{
		Auth:        transport,
		Remote:      adapter.NewHTTPRemoteStore(transport),
		Preferences: preferences,
	}, cfg.Sync, utils.NewSystemClock(), logger)

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(services, preferences, ui, cfg, storages.Close, logger), nil
}

func newApp(services *service.ClientServices, preferences adapter.PreferenceStore, ui UI, cfg *config.ClientConfig, closer func() error, logger *logger.Logger) *App {
	return &App{
		services:    services,
		preferences: preferences,
		ui:          ui,
		cfg:         cfg,
		closer:      closer,
		logger:      logger,
	}
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := a.run(ctx)
	if closeErr := a.close(); closeErr != nil {
		a.logger.Err(closeErr).Msg("closing local storage failed")
	}
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	for {
		session, err := a.signIn(ctx)
		if err != nil {
			return err
		}

		logout, err := a.runSession(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.signOut(ctx, session)
	}
}

// signIn restores the persisted session, then falls back to the configured
// account and finally to the login pages.
func (a *App) signIn(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if err == nil {
		a.logger.Info().Int64("account_id", session.AccountID).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, service.ErrNotSignedIn) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	if a.cfg != nil && a.cfg.Account.Login != "" {
		return a.signInWithConfig(ctx)
	}
	return a.ui.LoginFlow(ctx)
}

func (a *App) signInWithConfig(ctx context.Context) (models.Session, error) {
	account := a.cfg.Account
	user := models.User{Login: account.Login, Password: account.Password, Name: account.Name}

	if account.Register {
		session, err := a.services.AuthService.Register(ctx, user)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, adapter.ErrConflict) {
			return models.Session{}, fmt.Errorf("register %s: %w", account.Login, err)
		}
		a.logger.Info().Str("login", account.Login).Msg("account already exists, signing in")
	}

	session, err := a.services.AuthService.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("login %s: %w", account.Login, err)
	}
	return session, nil
}

// runSession runs the sign-in synchronization and the journal of one
// signed-in account. The background workers live exactly as long.
func (a *App) runSession(ctx context.Context, session models.Session) (bool, error) {
	sessionCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.sessionWorkers(session.AccountID).Run(sessionCtx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	synced, err := a.ui.SyncFlow(sessionCtx, session.AccountID)
	if err != nil {
		return false, err
	}
	a.logger.Info().
		Int64("account_id", session.AccountID).
		Str("outcome", string(synced.Outcome)).
		Dur("duration", synced.Duration()).
		Msg("sign-in sync finished")

	return a.ui.MainLoop(sessionCtx, session, synced)
}

func (a *App) sessionWorkers(accountID int64) *workers.Workers {
	return workers.NewWorkers(
		workers.NewMirrorWorker(a.services.MirrorJob, accountID, a.cfg.Workers),
		workers.NewPreferenceWatchWorker(a.preferences, a.services.PreferenceService, a.services.Broadcaster, accountID, a.cfg.Workers, a.cfg.Sync, a.logger),
	)
}

// signOut stops the convergence watcher before forgetting the session so no
// loop keeps reading the previous account.
func (a *App) signOut(ctx context.Context, session models.Session) {
	if a.services.Watcher != nil {
		a.services.Watcher.Stop()
	}
	if err := a.services.AuthService.SignOut(ctx); err != nil {
		a.logger.Err(err).Int64("account_id", session.AccountID).Msg("sign out failed")
		return
	}
	a.logger.Info().Int64("account_id", session.AccountID).Msg("signed out")
}

func (a *App) close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
