// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
)

// MirrorWorker binds the mirror job to the worker's context: the job runs
// from Run until ctx is done.
type MirrorWorker struct {
	job       service.ClientMirrorJob
	accountID int64
	interval  time.Duration
}

func NewMirrorWorker(job service.ClientMirrorJob, accountID int64, cfg config.Workers) *MirrorWorker {
	return &MirrorWorker{
		job:       job,
		accountID: accountID,
		interval:  cfg.MirrorInterval,
	}
}

func (w *MirrorWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.accountID, w.interval)
	<-ctx.Done()
	w.job.Stop()
}
