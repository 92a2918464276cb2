// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-keeper/internal/app"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getPreferences").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	doc, err := h.services.PreferenceService.Get(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPreferences").Msg("error getting preferences")
		http.Error(w, "error getting preferences", statusFromError(err))
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// putPreferences answers 409 when the request's base revision is stale.
func (h *Handler) putPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.putPreferences").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var request models.PutPreferencesRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.putPreferences").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	revision, err := h.services.PreferenceService.Put(ctx, accountID, request.Preferences, request.BaseRevision)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putPreferences").Int64("base_revision", request.BaseRevision).Msg("error writing preferences")
		http.Error(w, "error writing preferences", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RevisionResponse{Revision: revision}, http.StatusOK)
}

func (h *Handler) getPreferenceRevision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getPreferenceRevision").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	revision, err := h.services.PreferenceService.Revision(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPreferenceRevision").Msg("error reading preference revision")
		http.Error(w, "error reading preference revision", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RevisionResponse{Revision: revision}, http.StatusOK)
}
