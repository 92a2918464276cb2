// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health backs the client's availability probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
