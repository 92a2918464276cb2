// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DaysResponse lists the day snapshots of the private partition.
type DaysResponse struct {
	Days   []WorkoutDaySnapshot `json:"days"`
	Length int                  `json:"length"`
}

// SplitsResponse lists the split snapshots of the private partition.
type SplitsResponse struct {
	Splits []SplitSnapshot `json:"splits"`
	Length int             `json:"length"`
}

// RevisionResponse returns the current revision of the replicated
// preference document.
type RevisionResponse struct {
	Revision int64 `json:"revision"`
}

// PublishResponse returns the identifier of a freshly published record.
type PublishResponse struct {
	RecordID string `json:"record_id"`
}

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status string `json:"status"`
}
