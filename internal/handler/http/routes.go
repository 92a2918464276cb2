// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// promhttp negotiates its own compression
	if h.metricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// managed document database
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.saveProfile)

		r.Get("/api/days", h.listDays)
		r.With(h.uploadHashing(uploadDaysField)).Post("/api/days", h.uploadDays)
		r.Get("/api/splits", h.listSplits)
		r.With(h.uploadHashing(uploadSplitsField)).Post("/api/splits", h.uploadSplits)

		r.Post("/api/public", h.publish)
		r.Get("/api/public/{id}", h.getPublished)
	})

	// replicated preference store
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)

		r.Get("/api/kv/preferences", h.getPreferences)
		r.Put("/api/kv/preferences", h.putPreferences)
		r.Get("/api/kv/revision", h.getPreferenceRevision)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
