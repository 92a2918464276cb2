// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrValidationNoDaysProvided:   http.StatusBadRequest,
	service.ErrValidationNoSplitsProvided: http.StatusBadRequest,
	service.ErrValidationNoAccountID:      http.StatusBadRequest,
	service.ErrValidationInvalidDayKey:    http.StatusBadRequest,
	service.ErrForeignAccountData:         http.StatusForbidden,
	service.ErrVersionIsNotSpecified:      http.StatusBadRequest,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrProfileNotFound:      http.StatusNotFound,
	store.ErrPreferencesNotFound:  http.StatusNotFound,
	store.ErrPublicRecordNotFound: http.StatusNotFound,
	store.ErrRevisionConflict:     http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingPayload:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
