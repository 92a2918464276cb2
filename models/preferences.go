// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fitness goals understood by the client. Unknown values coming from the
// replicated store are kept as-is.
const (
	GoalGeneralFitness = "general_fitness"
	GoalStrength       = "strength"
	GoalHypertrophy    = "hypertrophy"
	GoalEndurance      = "endurance"
)

// Equipment presets.
const (
	EquipmentFullGym    = "full_gym"
	EquipmentDumbbells  = "dumbbells"
	EquipmentBodyweight = "bodyweight"
)

// Experience levels.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// FitnessPreferences is the small scalar "fitness profile" bag that lives in
// both the replicated key-value store and the local config table.
//
// The local copy is the authoritative read surface for the rest of the
// application; the replicated store is a write-behind target and is only
// pulled from at sign-in or when another device changes it.
type FitnessPreferences struct {
	// Goal is the training goal (see Goal* constants).
	Goal string `json:"goal"`

	// Equipment describes what the user trains with.
	Equipment string `json:"equipment"`

	// ExperienceLevel is the self-reported training experience.
	ExperienceLevel string `json:"experience_level"`

	// TrainingDaysPerWeek is the planned number of sessions per week (1..7).
	TrainingDaysPerWeek int `json:"training_days_per_week"`

	// Completed is true once the onboarding questionnaire was finished.
	Completed bool `json:"completed"`

	// UpdatedAt is the time of the last local or remote modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DefaultFitnessPreferences returns the preferences used when neither the
// local config nor the replicated store has a value yet.
func DefaultFitnessPreferences() FitnessPreferences {
	return FitnessPreferences{
		Goal:                GoalGeneralFitness,
		Equipment:           EquipmentFullGym,
		ExperienceLevel:     ExperienceBeginner,
		TrainingDaysPerWeek: 3,
		Completed:           false,
	}
}

// IsZero reports whether p carries no values at all, which is what the
// replicated store returns for an account that never wrote preferences.
func (p FitnessPreferences) IsZero() bool {
	return p.Goal == "" && p.Equipment == "" && p.ExperienceLevel == "" &&
		p.TrainingDaysPerWeek == 0 && !p.Completed
}

// PreferenceDocument is the replicated store's view of an account's
// preferences together with the store revision it was read at.
type PreferenceDocument struct {
	Preferences FitnessPreferences `json:"preferences"`
	Revision    int64              `json:"revision"`
}

// LocalPreferences is the row of the local config table. Revision is the
// replicated store revision the values were last reconciled with; Dirty marks
// a local write that has not reached the replicated store yet.
type LocalPreferences struct {
	AccountID   int64              `json:"account_id"`
	Preferences FitnessPreferences `json:"preferences"`
	Revision    int64              `json:"revision"`
	Dirty       bool               `json:"dirty"`
}
