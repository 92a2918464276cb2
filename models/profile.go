// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FitnessProfile is the single remote profile document kept per account in
// the private partition. It is created on the first successful profile sync,
// updated whenever the local profile changes and never deleted by the client.
type FitnessProfile struct {
	// AccountID is the owner of the profile.
	AccountID int64 `json:"account_id"`

	// DisplayName is shown on shared workouts.
	DisplayName string `json:"display_name"`

	// Preferences is a snapshot of the preference set at the time of the
	// last profile write.
	Preferences FitnessPreferences `json:"preferences"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
