// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// Field names accepted by [WorkoutValidator.Validate].
const (
	FieldAccountID    = "account_id"
	FieldRecordID     = "record_id"
	FieldDateKey      = "date_key"
	FieldDayName      = "day_name"
	FieldExercises    = "exercises"
	FieldSplitName    = "split_name"
	FieldDays         = "days"
	FieldSplits       = "splits"
	FieldLength       = "length"
	FieldGoal         = "goal"
	FieldEquipment    = "equipment"
	FieldExperience   = "experience_level"
	FieldTrainingDays = "training_days_per_week"
	FieldPreferences  = "preferences"
	FieldBaseRevision = "base_revision"
)

var (
	allowedGoals = []string{
		models.GoalGeneralFitness,
		models.GoalStrength,
		models.GoalHypertrophy,
		models.GoalEndurance,
	}
	allowedEquipment = []string{
		models.EquipmentFullGym,
		models.EquipmentDumbbells,
		models.EquipmentBodyweight,
	}
	allowedExperience = []string{
		models.ExperienceBeginner,
		models.ExperienceIntermediate,
		models.ExperienceAdvanced,
	}
)

// WorkoutValidator implements [Validator] for day snapshots, split
// snapshots, upload requests and preference documents.
type WorkoutValidator struct{}

// NewWorkoutValidator returns a [WorkoutValidator] as a [Validator].
func NewWorkoutValidator() Validator {
	return &WorkoutValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. Unsupported types yield [ErrUnsupportedType].
func (v *WorkoutValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WorkoutDaySnapshot:
		return v.validateDay(value, fields...)
	case *models.WorkoutDaySnapshot:
		return v.validateDay(*value, fields...)
	case []models.WorkoutDaySnapshot:
		return v.validateDays(value)
	case models.SplitSnapshot:
		return v.validateSplit(value, fields...)
	case *models.SplitSnapshot:
		return v.validateSplit(*value, fields...)
	case []models.SplitSnapshot:
		return v.validateSplits(value)
	case models.UploadDaysRequest:
		return v.validateUploadDays(value, fields...)
	case *models.UploadDaysRequest:
		return v.validateUploadDays(*value, fields...)
	case models.UploadSplitsRequest:
		return v.validateUploadSplits(value, fields...)
	case *models.UploadSplitsRequest:
		return v.validateUploadSplits(*value, fields...)
	case models.FitnessPreferences:
		return v.validatePreferences(value, fields...)
	case *models.FitnessPreferences:
		return v.validatePreferences(*value, fields...)
	case models.PutPreferencesRequest:
		return v.validatePutPreferences(value, fields...)
	case *models.PutPreferencesRequest:
		return v.validatePutPreferences(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateDay checks one day snapshot. Exercises must have a name and
// non-negative sets; positions are not required to be dense.
func (v *WorkoutValidator) validateDay(day models.WorkoutDaySnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateKey, FieldDayName, FieldExercises}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if day.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldRecordID:
			if strings.TrimSpace(day.RecordID) == "" {
				return ErrInvalidRecordID
			}
		case FieldDateKey:
			if !(models.DayKey{DateKey: day.DateKey, DayName: "x"}).Valid() {
				return ErrInvalidDateKey
			}
		case FieldDayName:
			if strings.TrimSpace(day.DayName) == "" {
				return ErrEmptyDayName
			}
		case FieldExercises:
			for i, e := range day.Exercises {
				if strings.TrimSpace(e.Name) == "" || e.Position < 0 {
					return fmt.Errorf("%w at index %d", ErrInvalidExercise, i)
				}
				for j, s := range e.Sets {
					if s.Reps < 0 || s.WeightKg < 0 {
						return fmt.Errorf("%w at exercise %d set %d", ErrInvalidSet, i, j)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDays checks every day and rejects duplicate natural keys inside
// one batch.
func (v *WorkoutValidator) validateDays(days []models.WorkoutDaySnapshot) error {
	if len(days) == 0 {
		return ErrEmptyDays
	}

	seen := make(map[models.DayKey]struct{}, len(days))
	for i, day := range days {
		if err := v.validateDay(day); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		key := day.Key()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateDayKey, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func (v *WorkoutValidator) validateSplit(split models.SplitSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSplitName}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if split.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldRecordID:
			if strings.TrimSpace(split.RecordID) == "" {
				return ErrInvalidRecordID
			}
		case FieldSplitName:
			if strings.TrimSpace(split.Name) == "" {
				return ErrEmptySplitName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkoutValidator) validateSplits(splits []models.SplitSnapshot) error {
	if len(splits) == 0 {
		return ErrEmptySplits
	}

	for i, split := range splits {
		if err := v.validateSplit(split); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}

func (v *WorkoutValidator) validateUploadDays(request models.UploadDaysRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDays, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if request.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldDays:
			if err := v.validateDays(request.Days); err != nil {
				return err
			}
		case FieldLength:
			if request.Length != len(request.Days) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkoutValidator) validateUploadSplits(request models.UploadSplitsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSplits, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if request.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldSplits:
			if err := v.validateSplits(request.Splits); err != nil {
				return err
			}
		case FieldLength:
			if request.Length != len(request.Splits) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePreferences rejects unknown enum values. Empty strings are allowed
// so that a partially completed questionnaire can be replicated.
func (v *WorkoutValidator) validatePreferences(prefs models.FitnessPreferences, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGoal, FieldEquipment, FieldExperience, FieldTrainingDays}
	}

	for _, f := range fields {
		switch f {
		case FieldGoal:
			if prefs.Goal != "" && !contains(allowedGoals, prefs.Goal) {
				return ErrInvalidGoal
			}
		case FieldEquipment:
			if prefs.Equipment != "" && !contains(allowedEquipment, prefs.Equipment) {
				return ErrInvalidEquipment
			}
		case FieldExperience:
			if prefs.ExperienceLevel != "" && !contains(allowedExperience, prefs.ExperienceLevel) {
				return ErrInvalidExperience
			}
		case FieldTrainingDays:
			if prefs.TrainingDaysPerWeek != 0 && (prefs.TrainingDaysPerWeek < 1 || prefs.TrainingDaysPerWeek > 7) {
				return ErrInvalidTrainingDays
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkoutValidator) validatePutPreferences(request models.PutPreferencesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPreferences, FieldBaseRevision}
	}

	for _, f := range fields {
		switch f {
		case FieldPreferences:
			if request.Preferences.IsZero() {
				return ErrEmptyPreferences
			}
			if err := v.validatePreferences(request.Preferences); err != nil {
				return err
			}
		case FieldBaseRevision:
			if request.BaseRevision < 0 {
				return ErrNegativeBaseRevision
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
