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

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getProfile").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	profile, err := h.services.RecordService.GetProfile(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting profile")
		http.Error(w, "error getting profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveProfile").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var profile models.FitnessProfile
	if err := utils.DecodeJSON(r, &profile); err != nil {
		log.Err(err).Str("func", "*Handler.saveProfile").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if profile.AccountID != 0 && profile.AccountID != accountID {
		log.Warn().Str("func", "*Handler.saveProfile").Int64("body_account_id", profile.AccountID).Msg("profile of another account")
		http.Error(w, app.MsgProfileBelongsToOtherAccount, http.StatusForbidden)
		return
	}
	profile.AccountID = accountID

	saved, err := h.services.RecordService.SaveProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveProfile").Msg("error saving profile")
		http.Error(w, "error saving profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listDays").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	days, err := h.services.RecordService.ListDays(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDays").Msg("error listing workout days")
		http.Error(w, "error listing workout days", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DaysResponse{Days: days, Length: len(days)}, http.StatusOK)
}

func (h *Handler) uploadDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadDays").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var request models.UploadDaysRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDays").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if request.AccountID != 0 && request.AccountID != accountID {
		log.Warn().Str("func", "*Handler.uploadDays").Int64("body_account_id", request.AccountID).Msg("upload for another account")
		http.Error(w, app.MsgDaysBelongToOtherAccount, http.StatusForbidden)
		return
	}

	if err := h.services.RecordService.UploadDays(ctx, accountID, request.Days); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDays").Msg("error uploading workout days")
		http.Error(w, "error uploading workout days", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listSplits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listSplits").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	splits, err := h.services.RecordService.ListSplits(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSplits").Msg("error listing splits")
		http.Error(w, "error listing splits", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SplitsResponse{Splits: splits, Length: len(splits)}, http.StatusOK)
}

func (h *Handler) uploadSplits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadSplits").Msg("no account ID was given")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var request models.UploadSplitsRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.uploadSplits").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if request.AccountID != 0 && request.AccountID != accountID {
		log.Warn().Str("func", "*Handler.uploadSplits").Int64("body_account_id", request.AccountID).Msg("upload for another account")
		http.Error(w, app.MsgSplitsBelongToOtherAccount, http.StatusForbidden)
		return
	}

	if err := h.services.RecordService.UploadSplits(ctx, accountID, request.Splits); err != nil {
		log.Err(err).Str("func", "*Handler.uploadSplits").Msg("error uploading splits")
		http.Error(w, "error uploading splits", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}
