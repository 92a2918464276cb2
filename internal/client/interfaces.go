// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface of the client. The terminal UI implements
// it; tests replace it with a script.
type UI interface {
	// LoginFlow asks for credentials until the user signs in.
	LoginFlow(ctx context.Context) (models.Session, error)

	// SyncFlow runs the sign-in synchronization of accountID.
	SyncFlow(ctx context.Context, accountID int64) (models.SyncSession, error)

	// MainLoop shows the journal and reports whether the user signed out.
	MainLoop(ctx context.Context, session models.Session, synced models.SyncSession) (bool, error)
}
