// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadDaysRequest carries day snapshots pushed from the local store to the
// private partition. Hash is the HMAC of the JSON-encoded Days and is
// verified by the server before anything is stored.
type UploadDaysRequest struct {
	AccountID int64                `json:"account_id"`
	Days      []WorkoutDaySnapshot `json:"days"`
	Hash      string               `json:"hash"`
	Length    int                  `json:"length"`
}

// UploadSplitsRequest carries split snapshots pushed to the private partition.
type UploadSplitsRequest struct {
	AccountID int64           `json:"account_id"`
	Splits    []SplitSnapshot `json:"splits"`
	Hash      string          `json:"hash"`
	Length    int             `json:"length"`
}

// PutPreferencesRequest replaces the replicated preference document. When
// BaseRevision is non-zero the server rejects the write if the stored
// revision moved on.
type PutPreferencesRequest struct {
	Preferences  FitnessPreferences `json:"preferences"`
	BaseRevision int64              `json:"base_revision,omitempty"`
}

// PublishRequest publishes one day snapshot to the public partition.
type PublishRequest struct {
	Day WorkoutDaySnapshot `json:"day"`
}
