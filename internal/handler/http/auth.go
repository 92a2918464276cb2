// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fit-keeper/internal/app"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			http.Error(w, app.MsgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("account_id", foundUser.AccountID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
