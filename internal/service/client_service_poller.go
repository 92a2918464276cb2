// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// convergencePoller is the fixed-interval read-and-check loop shared by the
// sync session and the background watcher. It has no state between runs.
type convergencePoller struct {
	reader   LocalDayReader
	clock    utils.Clock
	interval time.Duration

	// attempts is the ceiling of reads per run.
	attempts int

	// maxErrors aborts the run after that many consecutive failed reads.
	// Zero disables the abort.
	maxErrors int

	// sleepFirst waits one interval before the first read.
	sleepFirst bool
}

type pollResult struct {
	Found   bool
	Records []models.DayRecord

	// Attempts is the number of reads issued.
	Attempts int

	// Aborted is set when maxErrors consecutive reads failed.
	Aborted bool

	// Cancelled is set when ctx was done at an iteration boundary.
	Cancelled bool

	// Err is the last read error, or ctx.Err() when cancelled.
	Err error
}

// Exhausted reports whether the run used its whole ceiling without finding
// anything.
func (r pollResult) Exhausted() bool {
	return !r.Found && !r.Aborted && !r.Cancelled
}

// poll reads until at least one record is found, the ceiling is reached,
// maxErrors consecutive reads fail or ctx is done. ctx is checked only at
// iteration boundaries; a read in flight is never interrupted. onAttempt is
// called on the polling goroutine after every read.
func (p *convergencePoller) poll(ctx context.Context, accountID int64, onAttempt func(attempt int)) pollResult {
	var (
		result      pollResult
		consecutive int
	)

	for attempt := 1; attempt <= p.attempts; attempt++ {
		if attempt > 1 || p.sleepFirst {
			if err := utils.Sleep(ctx, p.clock, p.interval); err != nil {
				result.Cancelled = true
				result.Err = err
				return result
			}
		}
		if err := ctx.Err(); err != nil {
			result.Cancelled = true
			result.Err = err
			return result
		}

		records, err := p.reader.QueryDayRecords(ctx, accountID)
		result.Attempts = attempt
		if onAttempt != nil {
			onAttempt(attempt)
		}

		if err != nil {
			consecutive++
			result.Err = err
			if p.maxErrors > 0 && consecutive >= p.maxErrors {
				result.Aborted = true
				return result
			}
			continue
		}

		consecutive = 0
		if len(records) > 0 {
			result.Found = true
			result.Records = records
			return result
		}
	}

	return result
}
