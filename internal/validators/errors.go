// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID     = errors.New("invalid account ID")
	ErrInvalidRecordID      = errors.New("invalid record id")
	ErrInvalidDateKey       = errors.New("invalid date key")
	ErrEmptyDayName         = errors.New("day name is required")
	ErrEmptySplitName       = errors.New("split name is required")
	ErrInvalidExercise      = errors.New("invalid exercise")
	ErrInvalidSet           = errors.New("invalid exercise set")
	ErrDuplicateDayKey      = errors.New("duplicate day natural key")
	ErrEmptyDays            = errors.New("days list cannot be empty")
	ErrEmptySplits          = errors.New("splits list cannot be empty")
	ErrLengthMismatch       = errors.New("declared length does not match payload")
	ErrInvalidGoal          = errors.New("invalid fitness goal")
	ErrInvalidTrainingDays  = errors.New("training days per week must be between 1 and 7")
	ErrInvalidExperience    = errors.New("invalid experience level")
	ErrInvalidEquipment     = errors.New("invalid equipment")
	ErrEmptyPreferences     = errors.New("preferences are required")
	ErrNegativeBaseRevision = errors.New("base revision cannot be negative")
)
