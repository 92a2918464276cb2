// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

const testAccountID int64 = 7

type fakeAuth struct {
	session models.Session
	err     error
	users   []models.User
}

func (f *fakeAuth) Register(_ context.Context, user models.User) (models.Session, error) {
	f.users = append(f.users, user)
	return f.session, f.err
}

func (f *fakeAuth) Login(_ context.Context, user models.User) (models.Session, error) {
	f.users = append(f.users, user)
	return f.session, f.err
}

func (f *fakeAuth) Restore(context.Context) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) SignOut(context.Context) error {
	return f.err
}

type fakeWorkouts struct {
	days      []models.DayRecord
	daysErr   error
	day       models.DayRecord
	dayErr    error
	recorded  []models.DayRecord
	recordErr error
}

func (f *fakeWorkouts) RecordDay(_ context.Context, day models.DayRecord) (models.DayRecord, error) {
	f.recorded = append(f.recorded, day)
	if f.recordErr != nil {
		return models.DayRecord{}, f.recordErr
	}
	day.ID = int64(len(f.recorded))
	return day, nil
}

func (f *fakeWorkouts) Days(context.Context, int64) ([]models.DayRecord, error) {
	return f.days, f.daysErr
}

func (f *fakeWorkouts) Day(context.Context, int64, models.DayKey) (models.DayRecord, error) {
	return f.day, f.dayErr
}

type fakeSharing struct {
	recordID     string
	shareErr     error
	shared       []models.DayKey
	imported     []string
	importResult models.MergeResult
	importErr    error
}

func (f *fakeSharing) Share(_ context.Context, _ int64, key models.DayKey) (string, error) {
	f.shared = append(f.shared, key)
	return f.recordID, f.shareErr
}

func (f *fakeSharing) Import(_ context.Context, _ int64, recordID string) (models.MergeResult, error) {
	f.imported = append(f.imported, recordID)
	return f.importResult, f.importErr
}

type fakeMirror struct {
	result models.MergeResult
	err    error
	calls  int
}

func (f *fakeMirror) Mirror(context.Context, int64) (models.MergeResult, error) {
	f.calls++
	return f.result, f.err
}

type fakePreferences struct {
	prefs   models.FitnessPreferences
	saved   []models.FitnessPreferences
	saveErr error
}

func (f *fakePreferences) Local(context.Context, int64) (models.FitnessPreferences, error) {
	return f.prefs, nil
}

func (f *fakePreferences) Save(_ context.Context, _ int64, prefs models.FitnessPreferences) error {
	f.saved = append(f.saved, prefs)
	return f.saveErr
}

func (f *fakePreferences) Pull(context.Context, int64, time.Duration) (models.FitnessPreferences, error) {
	return f.prefs, nil
}

func (f *fakePreferences) Replicate(context.Context, int64) error {
	return nil
}

type fakeOrchestrator struct {
	run func(ctx context.Context, accountID int64) models.SyncSession
}

func (f fakeOrchestrator) Run(ctx context.Context, accountID int64) models.SyncSession {
	return f.run(ctx, accountID)
}

type testServices struct {
	*service.ClientServices

	auth        *fakeAuth
	workouts    *fakeWorkouts
	sharing     *fakeSharing
	mirror      *fakeMirror
	preferences *fakePreferences
}

func newTestServices() testServices {
	ts := testServices{
		auth:        &fakeAuth{session: models.Session{AccountID: testAccountID, Login: "athlete"}},
		workouts:    &fakeWorkouts{},
		sharing:     &fakeSharing{},
		mirror:      &fakeMirror{},
		preferences: &fakePreferences{prefs: models.DefaultFitnessPreferences()},
	}
	ts.ClientServices = &service.ClientServices{
		AuthService:       ts.auth,
		WorkoutService:    ts.workouts,
		SharingService:    ts.sharing,
		MirrorService:     ts.mirror,
		PreferenceService: ts.preferences,
		Broadcaster:       service.NewBroadcaster(),
	}
	return ts
}

func newTestJournal(ts testServices) mainLoopModel {
	m := newMainLoopModel(context.Background(), ts.ClientServices,
		models.Session{AccountID: testAccountID, Login: "athlete"},
		models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"),
		func() tea.Msg { return nil })
	m.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	m.copyText = func(string) error { return errors.New("no clipboard") }
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m and returns the updated journal.
func send(m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(mainLoopModel), cmd
}

func testDay(date, name, split string) models.DayRecord {
	return models.DayRecord{
		AccountID: testAccountID,
		DateKey:   date,
		DayName:   name,
		SplitName: split,
		Exercises: []models.Exercise{
			{Position: 0, Name: "Squat", Sets: []models.ExerciseSet{{Position: 0, Reps: 5, WeightKg: 100}}},
		},
	}
}
