// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

const serverUnavailableText = "Отсутствует сеть или Сервер недоступен"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrRemoteUnavailable) {
		return serverUnavailableText
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableText
	}

	return err.Error()
}

func humanizeAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, adapter.ErrConflict), errors.Is(err, store.ErrLoginAlreadyExists):
		return "Логин уже занят"
	case errors.Is(err, adapter.ErrBadRequest):
		return "Некорректные данные"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func humanizeJournalError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrDayAlreadyExists):
		return "День с такой датой и названием уже записан"
	case errors.Is(err, store.ErrDayNotFound):
		return "День не найден"
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrPublicRecordNotFound):
		return "Запись с таким кодом не найдена"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Некорректные данные: " + err.Error()
	case errors.Is(err, adapter.ErrNotSignedIn), errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия истекла, войдите заново"
	default:
		return humanizeServerUnavailableError(err)
	}
}
