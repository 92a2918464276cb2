// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// localDayRepository is the SQLite-backed implementation of
// [LocalDayRepository]. Day graphs span three tables (workout_days,
// exercises, exercise_sets) and are always written inside one transaction.
type localDayRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalDayRepository constructs a [LocalDayRepository] backed by the local
// SQLite connection.
func NewLocalDayRepository(db *DB, logger *logger.Logger) LocalDayRepository {
	logger.Debug().Msg("creating local day repository")
	return &localDayRepository{db: db, logger: logger}
}

// QueryDayRecords returns every day row of the account without exercises.
func (r *localDayRepository) QueryDayRecords(ctx context.Context, accountID int64) ([]models.DayRecord, error) {
	return r.selectDays(ctx, accountID, false)
}

// GetDayGraph returns the day stored under key with its exercises and sets.
func (r *localDayRepository) GetDayGraph(ctx context.Context, accountID int64, key models.DayKey) (models.DayRecord, error) {
	log := logger.FromContext(ctx)
	key = key.Normalize()

	query, args, err := buildSelectDayByKeyQuery(r.db.builder(), accountID, key)
	if err != nil {
		log.Err(err).Str("func", "localDayRepository.GetDayGraph").Msg("failed to create query")
		return models.DayRecord{}, err
	}

	day, err := scanDay(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DayRecord{}, ErrDayNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localDayRepository.GetDayGraph").
			Int64("account_id", accountID).
			Str("day", key.String()).
			Msg("failed to scan day row")
		return models.DayRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	days := []models.DayRecord{day}
	if err = loadExercises(ctx, r.db.DB, r.db.builder(), days); err != nil {
		log.Err(err).Str("func", "localDayRepository.GetDayGraph").Int64("account_id", accountID).Msg("failed to load exercises")
		return models.DayRecord{}, err
	}

	return days[0], nil
}

// ListUnmirrored returns the day graphs that were not replicated yet.
func (r *localDayRepository) ListUnmirrored(ctx context.Context, accountID int64) ([]models.DayRecord, error) {
	days, err := r.selectDays(ctx, accountID, true)
	if err != nil {
		return nil, err
	}

	if err = loadExercises(ctx, r.db.DB, r.db.builder(), days); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localDayRepository.ListUnmirrored").
			Int64("account_id", accountID).
			Msg("failed to load exercises")
		return nil, err
	}

	return days, nil
}

// ListSplits returns every split of the account ordered by name.
func (r *localDayRepository) ListSplits(ctx context.Context, accountID int64) ([]models.Split, error) {
	return selectSplits(ctx, r.db.DB, r.db.builder(), accountID, "")
}

// MarkMirrored flags the given days as replicated. An empty id list is a
// no-op.
func (r *localDayRepository) MarkMirrored(ctx context.Context, accountID int64, dayIDs ...int64) error {
	if len(dayIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkMirroredQuery(r.db.builder(), accountID, dayIDs)
	if err != nil {
		log.Err(err).Str("func", "localDayRepository.MarkMirrored").Msg("failed to create query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localDayRepository.MarkMirrored").
			Int64("account_id", accountID).
			Int("days", len(dayIDs)).
			Msg("failed to mark days as mirrored")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RunInTx runs fn inside one SQLite transaction. Any error returned by fn
// rolls back every write made through the [LocalDayTx].
func (r *localDayRepository) RunInTx(ctx context.Context, fn func(tx LocalDayTx) error) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		return fn(&localDayTx{tx: tx, builder: r.db.builder()})
	})
}

func (r *localDayRepository) selectDays(ctx context.Context, accountID int64, onlyUnmirrored bool) ([]models.DayRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDaysQuery(r.db.builder(), accountID, onlyUnmirrored)
	if err != nil {
		log.Err(err).Str("func", "localDayRepository.selectDays").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localDayRepository.selectDays").
			Int64("account_id", accountID).
			Msg("failed to execute query for getting day records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make([]models.DayRecord, 0, 16)
	for rows.Next() {
		day, scanErr := scanDay(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localDayRepository.selectDays").
				Int64("account_id", accountID).
				Msg("failed to scan day row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localDayRepository.selectDays").
			Int64("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return days, nil
}

// localDayTx implements [LocalDayTx] on top of an open *sql.Tx.
type localDayTx struct {
	tx      *sql.Tx
	builder sq.StatementBuilderType
}

// FindSplitByName returns [ErrSplitNotFound] when the account has no split
// with that name.
func (t *localDayTx) FindSplitByName(ctx context.Context, accountID int64, name string) (models.Split, error) {
	splits, err := selectSplits(ctx, t.tx, t.builder, accountID, strings.TrimSpace(name))
	if err != nil {
		return models.Split{}, err
	}
	if len(splits) == 0 {
		return models.Split{}, ErrSplitNotFound
	}
	return splits[0], nil
}

// InsertSplit stores a split and returns its local id.
func (t *localDayTx) InsertSplit(ctx context.Context, split models.Split) (int64, error) {
	log := logger.FromContext(ctx)

	days, err := json.Marshal(nonNilStrings(split.Days))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	res, err := t.tx.ExecContext(ctx, insertSplit, split.ClientSideID, split.AccountID, strings.TrimSpace(split.Name), string(days))
	if err != nil {
		log.Err(err).
			Str("func", "localDayTx.InsertSplit").
			Int64("account_id", split.AccountID).
			Str("split", split.Name).
			Msg("failed to insert split")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.LastInsertId()
}

// FindDayByNaturalKey returns [ErrDayNotFound] when no day matches key.
func (t *localDayTx) FindDayByNaturalKey(ctx context.Context, accountID int64, key models.DayKey) (int64, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindDayByKeyQuery(t.builder, accountID, key.Normalize())
	if err != nil {
		log.Err(err).Str("func", "localDayTx.FindDayByNaturalKey").Msg("failed to create query")
		return 0, "", err
	}

	var (
		id   int64
		hash string
	)
	err = t.tx.QueryRowContext(ctx, query, args...).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", ErrDayNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localDayTx.FindDayByNaturalKey").
			Int64("account_id", accountID).
			Str("day", key.String()).
			Msg("failed to look up day")
		return 0, "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, hash, nil
}

// InsertDayGraph stores the day row, then its exercises and their sets. A
// day with the same natural key yields [ErrDayAlreadyExists].
func (t *localDayTx) InsertDayGraph(ctx context.Context, day models.DayRecord) (int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "localDayTx.InsertDayGraph").
		Int64("account_id", day.AccountID).
		Str("day", day.Key().String()).
		Logger()

	key := day.Key()
	if day.ContentHash == "" {
		day.ContentHash = models.HashDay(day.SplitName, day.Exercises)
	}

	var splitID sql.NullInt64
	if day.SplitID != nil {
		splitID = sql.NullInt64{Int64: *day.SplitID, Valid: true}
	}

	res, err := t.tx.ExecContext(ctx, insertDay, day.ClientSideID, day.AccountID, splitID, key.DateKey, key.DayName, day.ContentHash, day.Mirrored)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return 0, ErrDayAlreadyExists
		}
		log.Err(err).Msg("failed to insert day")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	dayID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, exercise := range day.Exercises {
		res, err = t.tx.ExecContext(ctx, insertExercise, dayID, exercise.Position, exercise.Name)
		if err != nil {
			log.Err(err).Int("exercise", i).Msg("failed to insert exercise")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		exerciseID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, set := range exercise.Sets {
			if _, err = t.tx.ExecContext(ctx, insertExerciseSet, exerciseID, set.Position, set.Reps, set.WeightKg); err != nil {
				log.Err(err).Int("exercise", i).Int("set", set.Position).Msg("failed to insert set")
				return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	return dayID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (models.DayRecord, error) {
	var (
		day       models.DayRecord
		splitID   sql.NullInt64
		createdAt sql.NullTime
	)

	err := row.Scan(
		&day.ID,
		&day.ClientSideID,
		&day.AccountID,
		&splitID,
		&day.SplitName,
		&day.DateKey,
		&day.DayName,
		&day.ContentHash,
		&day.Mirrored,
		&createdAt,
	)
	if err != nil {
		return models.DayRecord{}, err
	}

	if splitID.Valid {
		id := splitID.Int64
		day.SplitID = &id
	}
	if createdAt.Valid {
		t := createdAt.Time
		day.CreatedAt = &t
	}

	return day, nil
}

// loadExercises fills the Exercises of every day with two bulk reads.
func loadExercises(ctx context.Context, q querier, b sq.StatementBuilderType, days []models.DayRecord) error {
	if len(days) == 0 {
		return nil
	}

	dayIndex := make(map[int64]int, len(days))
	dayIDs := make([]int64, 0, len(days))
	for i, d := range days {
		dayIndex[d.ID] = i
		dayIDs = append(dayIDs, d.ID)
		days[i].Exercises = []models.Exercise{}
	}

	query, args, err := buildSelectExercisesQuery(b, dayIDs)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	type exerciseRef struct{ day, pos int }
	refs := make(map[int64]exerciseRef)
	exerciseIDs := make([]int64, 0, 32)

	for rows.Next() {
		var e models.Exercise
		if err = rows.Scan(&e.ID, &e.DayID, &e.Position, &e.Name); err != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Sets = []models.ExerciseSet{}
		di := dayIndex[e.DayID]
		days[di].Exercises = append(days[di].Exercises, e)
		refs[e.ID] = exerciseRef{day: di, pos: len(days[di].Exercises) - 1}
		exerciseIDs = append(exerciseIDs, e.ID)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if len(exerciseIDs) == 0 {
		return nil
	}

	query, args, err = buildSelectSetsQuery(b, exerciseIDs)
	if err != nil {
		return err
	}

	rows, err = q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			exerciseID int64
			set        models.ExerciseSet
		)
		if err = rows.Scan(&exerciseID, &set.Position, &set.Reps, &set.WeightKg); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ref, ok := refs[exerciseID]
		if !ok {
			continue
		}
		ex := &days[ref.day].Exercises[ref.pos]
		ex.Sets = append(ex.Sets, set)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func selectSplits(ctx context.Context, q querier, b sq.StatementBuilderType, accountID int64, name string) ([]models.Split, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSplitsQuery(b, accountID, name)
	if err != nil {
		log.Err(err).Str("func", "selectSplits").Msg("failed to create query")
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "selectSplits").Int64("account_id", accountID).Msg("failed to execute query for getting splits")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	splits := make([]models.Split, 0, 4)
	for rows.Next() {
		var (
			split     models.Split
			days      string
			createdAt sql.NullTime
		)
		if err = rows.Scan(&split.ID, &split.ClientSideID, &split.AccountID, &split.Name, &days, &createdAt); err != nil {
			log.Err(err).Str("func", "selectSplits").Int64("account_id", accountID).Msg("failed to scan split row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if days != "" {
			if err = json.Unmarshal([]byte(days), &split.Days); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
			}
		}
		if createdAt.Valid {
			t := createdAt.Time
			split.CreatedAt = &t
		}
		splits = append(splits, split)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return splits, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
