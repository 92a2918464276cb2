// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the fitness client:
// sign-in pages, the sign-in synchronization screen and the workout journal.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

var (
	ErrUserQuit   = errors.New("вышел из программы")
	errNoServices = errors.New("client services are not set")
)

// eventBufferSize bounds the relayed broadcaster updates waiting for a
// screen to read them.
const eventBufferSize = 64

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	relay     *eventRelay
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		relay:     newEventRelay(services.Broadcaster, eventBufferSize),
		logger:    logger,
	}, nil
}

// LoginFlow shows the start menu until the user signs in or registers.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// SyncFlow runs one sign-in synchronization session on the progress screen
// and returns the finished session. esc cancels the session; ctrl+c quits.
func (t *TUI) SyncFlow(ctx context.Context, accountID int64) (models.SyncSession, error) {
	t.relay.drain()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan struct{})
	defer close(done)

	model := newSyncScreenModel(runCtx, cancel, t.services.Orchestrator, accountID, t.relay.listen(done))
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.SyncSession{}, runErr
	}

	result, ok := finalModel.(syncScreenModel)
	if !ok {
		return models.SyncSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return result.session, ErrUserQuit
	}

	t.logger.Debug().
		Int64("account_id", accountID).
		Str("outcome", string(result.session.Outcome)).
		Bool("handed_off", result.session.HandedOff).
		Msg("sync screen closed")
	return result.session, nil
}

// MainLoop shows the workout journal. It returns true when the user signed
// out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, synced models.SyncSession) (logout bool, err error) {
	t.relay.drain()

	done := make(chan struct{})
	defer close(done)

	model := newMainLoopModel(ctx, t.services, session, t.buildInfo, t.relay.listen(done))
	model.status = outcomeStatus(synced)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
