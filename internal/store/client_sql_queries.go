// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fit-keeper/models"
)

const (
	upsertSession = `INSERT INTO session (id, account_id, login, token, signed_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    account_id = excluded.account_id,
    login      = excluded.login,
    token      = excluded.token,
    signed_at  = excluded.signed_at`

	selectSession = `SELECT account_id, login, token, signed_at FROM session WHERE id = 1`

	deleteSession = `DELETE FROM session`

	selectLocalPreferences = `SELECT account_id, goal, equipment, experience_level, training_days_per_week, completed, revision, dirty, updated_at
FROM preferences
WHERE account_id = ?`

	upsertLocalPreferences = `INSERT INTO preferences (account_id, goal, equipment, experience_level, training_days_per_week, completed, dirty, updated_at)
VALUES (?, ?, ?, ?, ?, ?, 1, ?)
ON CONFLICT (account_id) DO UPDATE SET
    goal                   = excluded.goal,
    equipment              = excluded.equipment,
    experience_level       = excluded.experience_level,
    training_days_per_week = excluded.training_days_per_week,
    completed              = excluded.completed,
    dirty                  = 1,
    updated_at             = excluded.updated_at`

	upsertRemotePreferences = `INSERT INTO preferences (account_id, goal, equipment, experience_level, training_days_per_week, completed, revision, dirty, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)
ON CONFLICT (account_id) DO UPDATE SET
    goal                   = excluded.goal,
    equipment              = excluded.equipment,
    experience_level       = excluded.experience_level,
    training_days_per_week = excluded.training_days_per_week,
    completed              = excluded.completed,
    revision               = excluded.revision,
    dirty                  = 0,
    updated_at             = excluded.updated_at`

	selectLocalProfile = `SELECT account_id, display_name, preferences, created_at, updated_at
FROM profiles
WHERE account_id = ?`

	upsertLocalProfile = `INSERT INTO profiles (account_id, display_name, preferences, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (account_id) DO UPDATE SET
    display_name = excluded.display_name,
    preferences  = excluded.preferences,
    updated_at   = excluded.updated_at`

	insertSplit = `INSERT INTO splits (client_side_id, account_id, name, days) VALUES (?, ?, ?, ?)`

	insertDay = `INSERT INTO workout_days (client_side_id, account_id, split_id, date_key, day_name, content_hash, mirrored)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertExercise = `INSERT INTO exercises (day_id, position, name) VALUES (?, ?, ?)`

	insertExerciseSet = `INSERT INTO exercise_sets (exercise_id, position, reps, weight_kg) VALUES (?, ?, ?, ?)`
)

var dayColumns = []string{
	"d.id",
	"d.client_side_id",
	"d.account_id",
	"d.split_id",
	"COALESCE(s.name, '')",
	"d.date_key",
	"d.day_name",
	"d.content_hash",
	"d.mirrored",
	"d.created_at",
}

// buildSelectDaysQuery lists flat day rows of an account, newest first.
// onlyUnmirrored narrows the result to days not yet replicated.
func buildSelectDaysQuery(b sq.StatementBuilderType, accountID int64, onlyUnmirrored bool) (string, []any, error) {
	where := sq.Eq{"d.account_id": accountID}
	if onlyUnmirrored {
		where["d.mirrored"] = false
	}

	query, args, err := b.Select(dayColumns...).
		From("workout_days d").
		LeftJoin("splits s ON s.id = d.split_id").
		Where(where).
		OrderBy("d.date_key DESC", "d.day_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectDayByKeyQuery selects one day row by its natural key.
func buildSelectDayByKeyQuery(b sq.StatementBuilderType, accountID int64, key models.DayKey) (string, []any, error) {
	query, args, err := b.Select(dayColumns...).
		From("workout_days d").
		LeftJoin("splits s ON s.id = d.split_id").
		Where(sq.Eq{"d.account_id": accountID, "d.date_key": key.DateKey, "d.day_name": key.DayName}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindDayByKeyQuery selects the identity and hash of a day.
func buildFindDayByKeyQuery(b sq.StatementBuilderType, accountID int64, key models.DayKey) (string, []any, error) {
	query, args, err := b.Select("id", "content_hash").
		From("workout_days").
		Where(sq.Eq{"account_id": accountID, "date_key": key.DateKey, "day_name": key.DayName}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectExercisesQuery loads the exercises of several days.
func buildSelectExercisesQuery(b sq.StatementBuilderType, dayIDs []int64) (string, []any, error) {
	query, args, err := b.Select("id", "day_id", "position", "name").
		From("exercises").
		Where(sq.Eq{"day_id": dayIDs}).
		OrderBy("day_id", "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectSetsQuery loads the sets of several exercises.
func buildSelectSetsQuery(b sq.StatementBuilderType, exerciseIDs []int64) (string, []any, error) {
	query, args, err := b.Select("exercise_id", "position", "reps", "weight_kg").
		From("exercise_sets").
		Where(sq.Eq{"exercise_id": exerciseIDs}).
		OrderBy("exercise_id", "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMarkMirroredQuery flags days of an account as replicated.
func buildMarkMirroredQuery(b sq.StatementBuilderType, accountID int64, dayIDs []int64) (string, []any, error) {
	query, args, err := b.Update("workout_days").
		Set("mirrored", true).
		Where(sq.Eq{"account_id": accountID, "id": dayIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectSplitsQuery lists splits of an account. A non-empty name
// narrows the result to one split.
func buildSelectSplitsQuery(b sq.StatementBuilderType, accountID int64, name string) (string, []any, error) {
	where := sq.Eq{"account_id": accountID}
	if name != "" {
		where["name"] = name
	}

	query, args, err := b.Select("id", "client_side_id", "account_id", "name", "days", "created_at").
		From("splits").
		Where(where).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
