// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local SQLite store, the HTTP transport, the client services,
// the background workers and the terminal UI into a single process
// lifecycle: sign in, run the sign-in synchronization, show the journal and
// start over after a sign-out.
package client
