// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-keeper/internal/app"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.publish").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var request models.PublishRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.publish").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	recordID, err := h.services.PublicRecordService.Publish(ctx, accountID, request.Day)
	if err != nil {
		log.Err(err).Str("func", "*Handler.publish").Msg("error publishing day")
		http.Error(w, "error publishing day", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PublishResponse{RecordID: recordID}, http.StatusCreated)
}

func (h *Handler) getPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "id")

	day, err := h.services.PublicRecordService.Get(ctx, recordID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPublished").Str("record_id", recordID).Msg("error getting public record")
		http.Error(w, "error getting public record", statusFromError(err))
		return
	}

	utils.WriteJSON(w, day, http.StatusOK)
}
