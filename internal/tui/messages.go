// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-fit-keeper/models"

// NavigateTo switches [RootModel] to Page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the sign-in flow when Err is nil.
type LoginResult struct {
	Err      error
	Username string
	Session  models.Session
}

// RegisterResult finishes the sign-in flow when Err is nil: a registered
// account is signed in right away.
type RegisterResult struct {
	Err      error
	Username string
	Session  models.Session
}

type stageChangedMsg struct {
	stage    models.Stage
	progress float64
}

type advisoryMsg struct {
	message string
}

type dataRefreshedMsg struct{}

type syncFinishedMsg struct {
	session models.SyncSession
}

type daysLoadedMsg struct {
	days []models.DayRecord
	err  error
}

type dayLoadedMsg struct {
	day models.DayRecord
	err error
}

type daySavedMsg struct {
	day models.DayRecord
	err error
}

type sharedMsg struct {
	key      models.DayKey
	recordID string
	copied   bool
	err      error
}

type importedMsg struct {
	result models.MergeResult
	err    error
}

type mirroredMsg struct {
	result models.MergeResult
	err    error
}

type preferencesLoadedMsg struct {
	prefs models.FitnessPreferences
	err   error
}

type preferencesSavedMsg struct {
	err error
}
