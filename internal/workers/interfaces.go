// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background loops for the signed-in
// account: the preference revision watch and the mirror job.
//
// A Worker blocks in Run until its context is cancelled; [Workers] runs a
// set of them side by side and waits for all of them to return.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done and must not outlive it.
type Worker interface {
	Run(ctx context.Context)
}

// RevisionWatcher polls the replicated preference revision and calls
// onChange when another device moves it.
type RevisionWatcher interface {
	Watch(ctx context.Context, interval time.Duration, onChange func())
}

// RefreshNotifier tells every screen to re-read the local store.
type RefreshNotifier interface {
	DataRefreshed()
}
