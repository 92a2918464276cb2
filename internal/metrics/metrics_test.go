// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSyncSession(t *testing.T) {
	before := testutil.ToFloat64(SyncSessions.WithLabelValues("not_found"))

	RecordSyncSession("not_found", 20*time.Second, 40)

	assert.Equal(t, before+1, testutil.ToFloat64(SyncSessions.WithLabelValues("not_found")))
}

func TestRecordMerge(t *testing.T) {
	inserted := testutil.ToFloat64(MergeRecords.WithLabelValues("inserted"))
	present := testutil.ToFloat64(MergeRecords.WithLabelValues("present"))
	orphaned := testutil.ToFloat64(MergeRecords.WithLabelValues("orphaned"))

	RecordMerge(2, 1, 3, 0, 1)

	assert.Equal(t, inserted+2, testutil.ToFloat64(MergeRecords.WithLabelValues("inserted")))
	assert.Equal(t, present+1, testutil.ToFloat64(MergeRecords.WithLabelValues("present")))
	assert.Equal(t, orphaned+3, testutil.ToFloat64(MergeRecords.WithLabelValues("orphaned")))
}

func TestRecordMirrorRun(t *testing.T) {
	ok := testutil.ToFloat64(MirrorRuns.WithLabelValues("success"))
	failed := testutil.ToFloat64(MirrorRuns.WithLabelValues("error"))

	RecordMirrorRun(nil)
	RecordMirrorRun(errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(MirrorRuns.WithLabelValues("success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(MirrorRuns.WithLabelValues("error")))
}

func TestRecordWatcherRunAndTimeouts(t *testing.T) {
	exhausted := testutil.ToFloat64(WatcherRuns.WithLabelValues("exhausted"))
	timeouts := testutil.ToFloat64(SyncStageTimeouts.WithLabelValues("syncing_preferences"))

	RecordWatcherRun("exhausted")
	RecordStageTimeout("syncing_preferences")

	assert.Equal(t, exhausted+1, testutil.ToFloat64(WatcherRuns.WithLabelValues("exhausted")))
	assert.Equal(t, timeouts+1, testutil.ToFloat64(SyncStageTimeouts.WithLabelValues("syncing_preferences")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/days", "200"))

	RecordHTTPRequest("GET", "/api/days", 200, 5*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/days", "200")))
}
