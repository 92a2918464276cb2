// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

var testEpoch = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

// fakeClock is a virtual clock. After advances virtual time by d and fires
// at once, except for blocked durations, which never fire.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	blocked map[time.Duration]bool
	waits   []time.Duration
}

func newFakeClock(blocked ...time.Duration) *fakeClock {
	c := &fakeClock{now: testEpoch, blocked: make(map[time.Duration]bool)}
	for _, d := range blocked {
		c.blocked[d] = true
	}
	return c
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blocked[d] {
		return nil
	}

	c.now = c.now.Add(d)
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

// count returns how many waits of length d were served.
func (c *fakeClock) count(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, w := range c.waits {
		if w == d {
			n++
		}
	}
	return n
}

// stepClock holds its first waits forever and serves the rest like
// fakeClock. It lets a fetch win its race and the following write lose.
type stepClock struct {
	*fakeClock

	mu    sync.Mutex
	calls int
	hold  int
}

func newStepClock(hold int) *stepClock {
	return &stepClock{fakeClock: newFakeClock(), hold: hold}
}

func (c *stepClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.calls++
	call := c.calls
	c.mu.Unlock()

	if call <= c.hold {
		return nil
	}
	return c.fakeClock.After(d)
}

// scriptedReader answers QueryDayRecords from a script indexed by the
// 1-based call number.
type scriptedReader struct {
	mu     sync.Mutex
	calls  int
	script func(call int) ([]models.DayRecord, error)
	onCall func(call int)
}

func (r *scriptedReader) QueryDayRecords(_ context.Context, _ int64) ([]models.DayRecord, error) {
	r.mu.Lock()
	r.calls++
	call := r.calls
	r.mu.Unlock()

	if r.onCall != nil {
		r.onCall(call)
	}
	if r.script == nil {
		return nil, nil
	}
	return r.script(call)
}

func (r *scriptedReader) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func emptyReads(int) ([]models.DayRecord, error) { return nil, nil }

func foundOn(n int) func(int) ([]models.DayRecord, error) {
	return func(call int) ([]models.DayRecord, error) {
		if call >= n {
			return []models.DayRecord{{ID: 1, AccountID: 1, DateKey: "2026-10-19", DayName: "Push"}}, nil
		}
		return nil, nil
	}
}

// spyWatcher records how many local reads were issued when Start was called.
type spyWatcher struct {
	mu           sync.Mutex
	reader       *scriptedReader
	starts       int
	readsAtStart int
}

func (w *spyWatcher) Start(int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.starts++
	if w.reader != nil {
		w.readsAtStart = w.reader.Calls()
	}
	return true
}

// signalRecorder subscribes to every signal of a broadcaster.
type signalRecorder struct {
	mu         sync.Mutex
	refreshes  int
	stages     []models.Stage
	progress   []float64
	advisories []string
	stageTimes map[models.Stage]time.Time
}

func recordSignals(b *Broadcaster, clock *fakeClock) *signalRecorder {
	r := &signalRecorder{stageTimes: make(map[models.Stage]time.Time)}
	b.OnDataRefreshed(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.refreshes++
	})
	b.OnStageChanged(func(stage models.Stage, p float64) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, seen := r.stageTimes[stage]; !seen {
			r.stages = append(r.stages, stage)
			r.stageTimes[stage] = time.Time{}
			if clock != nil {
				r.stageTimes[stage] = clock.Now()
			}
		}
		r.progress = append(r.progress, p)
	})
	b.OnAdvisory(func(msg string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.advisories = append(r.advisories, msg)
	})
	return r
}

func (r *signalRecorder) Refreshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

func newTestClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fit.db")
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func testSnapshot(recordID, date, name, split string) models.WorkoutDaySnapshot {
	return models.WorkoutDaySnapshot{
		RecordID:  recordID,
		AccountID: 1,
		DateKey:   date,
		DayName:   name,
		SplitName: split,
		Exercises: []models.ExerciseSnapshot{
			{Position: 0, Name: "Squat", Sets: []models.ExerciseSet{{Position: 0, Reps: 5, WeightKg: 100}, {Position: 1, Reps: 5, WeightKg: 105}}},
			{Position: 1, Name: "Lunge", Sets: []models.ExerciseSet{{Position: 0, Reps: 10, WeightKg: 20}}},
		},
	}
}

func testSyncConfig() config.Sync {
	cfg := config.DefaultSync()
	// distinct budgets so a test can let one fire and block the other
	cfg.ProfileTimeout = 3 * time.Second
	return cfg
}
