// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type mergeReconciler struct {
	days store.LocalDayRepository
	ids  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMergeReconciler(days store.LocalDayRepository, logger *logger.Logger) MergeReconciler {
	return &mergeReconciler{
		days:   days,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Merge resolves splits first so that days can point at them, then inserts
// every day whose natural key is absent locally. Existing local records are
// never modified. Days whose parent split cannot be resolved are skipped and
// counted as orphaned; they are not an error.
func (m *mergeReconciler) Merge(ctx context.Context, accountID int64, snapshot models.RemoteSnapshot) (models.MergeResult, error) {
	var result models.MergeResult

	err := m.days.RunInTx(ctx, func(tx store.LocalDayTx) error {
		splitIDs, err := m.mergeSplits(ctx, tx, accountID, snapshot.Splits, &result)
		if err != nil {
			return err
		}

		return m.mergeDays(ctx, tx, accountID, snapshot.Days, splitIDs, &result)
	})
	if err != nil {
		m.logger.Err(err).Int64("account_id", accountID).Msg("merge pass failed")
		return models.MergeResult{}, fmt.Errorf("merge pass failed: %w", err)
	}

	metrics.RecordMerge(len(result.Inserted), len(result.AlreadyPresent), result.Orphaned, result.Conflicts, result.SplitsInserted)
	m.logger.Debug().
		Int64("account_id", accountID).
		Int("inserted", len(result.Inserted)).
		Int("already_present", len(result.AlreadyPresent)).
		Int("orphaned", result.Orphaned).
		Int("conflicts", result.Conflicts).
		Int("splits_inserted", result.SplitsInserted).
		Msg("merge pass finished")

	return result, nil
}

func (m *mergeReconciler) mergeSplits(ctx context.Context, tx store.LocalDayTx, accountID int64, splits []models.SplitSnapshot, result *models.MergeResult) (map[string]int64, error) {
	splitIDs := make(map[string]int64, len(splits))

	for _, remote := range splits {
		name := strings.TrimSpace(remote.Name)
		if name == "" {
			continue
		}
		if _, seen := splitIDs[name]; seen {
			continue
		}

		local, err := tx.FindSplitByName(ctx, accountID, name)
		if err == nil {
			splitIDs[name] = local.ID
			continue
		}
		if !errors.Is(err, store.ErrSplitNotFound) {
			return nil, fmt.Errorf("looking up split %q: %w", name, err)
		}

		clientSideID := strings.TrimSpace(remote.RecordID)
		if clientSideID == "" {
			clientSideID = m.ids.Generate()
		}

		days := make([]string, len(remote.Days))
		copy(days, remote.Days)

		id, err := tx.InsertSplit(ctx, models.Split{
			ClientSideID: clientSideID,
			AccountID:    accountID,
			Name:         name,
			Days:         days,
		})
		if err != nil {
			return nil, fmt.Errorf("inserting split %q: %w", name, err)
		}

		splitIDs[name] = id
		result.SplitsInserted++
	}

	return splitIDs, nil
}

func (m *mergeReconciler) mergeDays(ctx context.Context, tx store.LocalDayTx, accountID int64, days []models.WorkoutDaySnapshot, splitIDs map[string]int64, result *models.MergeResult) error {
	seen := make(map[models.DayKey]struct{}, len(days))

	for _, remote := range days {
		key := remote.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		record := remote.ToDayRecord(accountID)

		_, localHash, err := tx.FindDayByNaturalKey(ctx, accountID, key)
		if err == nil {
			result.AlreadyPresent = append(result.AlreadyPresent, key)
			if localHash != record.ContentHash {
				result.Conflicts++
				m.logger.Debug().Str("day", key.String()).Msg("remote day differs from local copy, keeping local")
			}
			continue
		}
		if !errors.Is(err, store.ErrDayNotFound) {
			return fmt.Errorf("looking up day %s: %w", key, err)
		}

		if record.SplitName != "" {
			splitID, ok, err := resolveSplit(ctx, tx, accountID, record.SplitName, splitIDs)
			if err != nil {
				return err
			}
			if !ok {
				result.Orphaned++
				m.logger.Warn().Str("day", key.String()).Str("split", record.SplitName).Msg("parent split unresolved, skipping day")
				continue
			}
			record.SplitID = &splitID
		}

		record.ClientSideID = strings.TrimSpace(remote.RecordID)
		if record.ClientSideID == "" {
			record.ClientSideID = m.ids.Generate()
		}

		if _, err = tx.InsertDayGraph(ctx, record); err != nil {
			if errors.Is(err, store.ErrDayAlreadyExists) {
				result.AlreadyPresent = append(result.AlreadyPresent, key)
				continue
			}
			return fmt.Errorf("inserting day %s: %w", key, err)
		}

		result.Inserted = append(result.Inserted, key)
	}

	return nil
}

func resolveSplit(ctx context.Context, tx store.LocalDayTx, accountID int64, name string, splitIDs map[string]int64) (int64, bool, error) {
	if id, ok := splitIDs[name]; ok {
		return id, true, nil
	}

	split, err := tx.FindSplitByName(ctx, accountID, name)
	if errors.Is(err, store.ErrSplitNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("looking up split %q: %w", name, err)
	}

	splitIDs[name] = split.ID
	return split.ID, true, nil
}
