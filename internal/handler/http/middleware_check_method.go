// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A path that
// exists but does not serve the requested method answers 404 rather than 405
// so that callers cannot probe which paths are registered.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served on this path")
		w.WriteHeader(http.StatusNotFound)
	}
}
