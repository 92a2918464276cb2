// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instruments of the client and the
// server. Instruments are registered on the default registry at package
// init; the server exposes them on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sync sessions

	SyncSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_sync_sessions_total",
			Help: "Sign-in sync sessions by outcome",
		},
		[]string{"outcome"}, // found, not_found, degraded
	)

	SyncSessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitkeeper_sync_session_duration_seconds",
			Help:    "Duration of sign-in sync sessions",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	SyncPollAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitkeeper_sync_poll_attempts",
			Help:    "Local reads issued while awaiting convergence",
			Buckets: []float64{1, 3, 5, 10, 20, 30, 40, 60},
		},
	)

	SyncStageTimeouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_sync_stage_timeouts_total",
			Help: "Advisory timeouts hit per stage",
		},
		[]string{"stage"},
	)

	// Background watcher

	WatcherRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_watcher_runs_total",
			Help: "Background convergence watcher runs by result",
		},
		[]string{"result"}, // found, exhausted, aborted, cancelled
	)

	WatcherActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitkeeper_watcher_active",
			Help: "1 while the background convergence watcher is running",
		},
	)

	// Merge

	MergeRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_merge_records_total",
			Help: "Remote day records seen by the merge, by disposition",
		},
		[]string{"kind"}, // inserted, present, orphaned, conflict, split
	)

	// Mirroring

	MirrorRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_mirror_runs_total",
			Help: "Local store mirroring runs by status",
		},
		[]string{"status"},
	)

	// Remote transport

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fitkeeper_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_circuit_breaker_requests_total",
			Help: "Requests passing through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	// Server

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitkeeper_http_requests_total",
			Help: "Handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitkeeper_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordSyncSession records the outcome of a finished sync session.
func RecordSyncSession(outcome string, duration time.Duration, pollAttempts int) {
	SyncSessions.WithLabelValues(outcome).Inc()
	SyncSessionDuration.Observe(duration.Seconds())
	SyncPollAttempts.Observe(float64(pollAttempts))
}

// RecordStageTimeout counts an advisory timeout.
func RecordStageTimeout(stage string) {
	SyncStageTimeouts.WithLabelValues(stage).Inc()
}

// RecordWatcherRun counts a finished watcher run.
func RecordWatcherRun(result string) {
	WatcherRuns.WithLabelValues(result).Inc()
}

// RecordMerge adds the counts of one merge pass.
func RecordMerge(inserted, present, orphaned, conflicts, splits int) {
	MergeRecords.WithLabelValues("inserted").Add(float64(inserted))
	MergeRecords.WithLabelValues("present").Add(float64(present))
	MergeRecords.WithLabelValues("orphaned").Add(float64(orphaned))
	MergeRecords.WithLabelValues("conflict").Add(float64(conflicts))
	MergeRecords.WithLabelValues("split").Add(float64(splits))
}

// RecordMirrorRun counts a mirroring run.
func RecordMirrorRun(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	MirrorRuns.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records a handled request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
