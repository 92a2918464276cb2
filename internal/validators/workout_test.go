// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/models"
)

func validDay() models.WorkoutDaySnapshot {
	return models.WorkoutDaySnapshot{
		RecordID:  "r1",
		AccountID: 1,
		DateKey:   "2026-10-19",
		DayName:   "Push",
		SplitName: "PPL",
		Exercises: []models.ExerciseSnapshot{
			{Position: 0, Name: "Bench press", Sets: []models.ExerciseSet{{Position: 0, Reps: 5, WeightKg: 80}}},
		},
	}
}

func TestNewWorkoutValidator(t *testing.T) {
	require.NotNil(t, NewWorkoutValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewWorkoutValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Day(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *models.WorkoutDaySnapshot)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(d *models.WorkoutDaySnapshot) {}},
		{name: "bad date", mutate: func(d *models.WorkoutDaySnapshot) { d.DateKey = "19.10.2026" }, wantErr: ErrInvalidDateKey},
		{name: "blank day name", mutate: func(d *models.WorkoutDaySnapshot) { d.DayName = "  " }, wantErr: ErrEmptyDayName},
		{name: "unnamed exercise", mutate: func(d *models.WorkoutDaySnapshot) { d.Exercises[0].Name = "" }, wantErr: ErrInvalidExercise},
		{name: "negative reps", mutate: func(d *models.WorkoutDaySnapshot) { d.Exercises[0].Sets[0].Reps = -1 }, wantErr: ErrInvalidSet},
		{name: "record id scoped", mutate: func(d *models.WorkoutDaySnapshot) { d.RecordID = "" }, fields: []string{FieldRecordID}, wantErr: ErrInvalidRecordID},
		{name: "account id scoped", mutate: func(d *models.WorkoutDaySnapshot) { d.AccountID = 0 }, fields: []string{FieldAccountID}, wantErr: ErrInvalidAccountID},
		{name: "record id not checked by default", mutate: func(d *models.WorkoutDaySnapshot) { d.RecordID = "" }},
		{name: "unknown field", mutate: func(d *models.WorkoutDaySnapshot) {}, fields: []string{"weight"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := validDay()
			tt.mutate(&day)

			err := NewWorkoutValidator().Validate(context.Background(), &day, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UploadDaysRequest(t *testing.T) {
	dup := validDay()
	dup.RecordID = "r2"

	other := validDay()
	other.DayName = "Pull"

	tests := []struct {
		name    string
		request models.UploadDaysRequest
		wantErr error
	}{
		{name: "valid", request: models.UploadDaysRequest{Days: []models.WorkoutDaySnapshot{validDay(), other}, Length: 2}},
		{name: "empty", request: models.UploadDaysRequest{}, wantErr: ErrEmptyDays},
		{name: "length mismatch", request: models.UploadDaysRequest{Days: []models.WorkoutDaySnapshot{validDay()}, Length: 3}, wantErr: ErrLengthMismatch},
		{name: "duplicate natural key", request: models.UploadDaysRequest{Days: []models.WorkoutDaySnapshot{validDay(), dup}, Length: 2}, wantErr: ErrDuplicateDayKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWorkoutValidator().Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UploadSplitsRequest(t *testing.T) {
	v := NewWorkoutValidator()

	ok := models.UploadSplitsRequest{Splits: []models.SplitSnapshot{{Name: "PPL"}}, Length: 1}
	assert.NoError(t, v.Validate(context.Background(), ok))

	blank := models.UploadSplitsRequest{Splits: []models.SplitSnapshot{{Name: " "}}, Length: 1}
	assert.ErrorIs(t, v.Validate(context.Background(), blank), ErrEmptySplitName)

	assert.ErrorIs(t, v.Validate(context.Background(), models.UploadSplitsRequest{}), ErrEmptySplits)
}

func TestValidate_Preferences(t *testing.T) {
	tests := []struct {
		name    string
		prefs   models.FitnessPreferences
		wantErr error
	}{
		{name: "defaults", prefs: models.DefaultFitnessPreferences()},
		{name: "partially filled", prefs: models.FitnessPreferences{Goal: models.GoalStrength}},
		{name: "unknown goal", prefs: models.FitnessPreferences{Goal: "bulk"}, wantErr: ErrInvalidGoal},
		{name: "unknown equipment", prefs: models.FitnessPreferences{Equipment: "kettlebell"}, wantErr: ErrInvalidEquipment},
		{name: "unknown experience", prefs: models.FitnessPreferences{ExperienceLevel: "pro"}, wantErr: ErrInvalidExperience},
		{name: "eight days", prefs: models.FitnessPreferences{TrainingDaysPerWeek: 8}, wantErr: ErrInvalidTrainingDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWorkoutValidator().Validate(context.Background(), tt.prefs)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PutPreferencesRequest(t *testing.T) {
	v := NewWorkoutValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PutPreferencesRequest{
		Preferences: models.DefaultFitnessPreferences(), BaseRevision: 2,
	}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.PutPreferencesRequest{}), ErrEmptyPreferences)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.PutPreferencesRequest{
		Preferences: models.DefaultFitnessPreferences(), BaseRevision: -1,
	}), ErrNegativeBaseRevision)
}
