// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

// Services is the server-side service set consumed by the HTTP handler.
type Services struct {
	AuthService         AuthService
	RecordService       RecordService
	PreferenceService   PreferenceDocumentService
	PublicRecordService PublicRecordService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	records := NewRecordValidationService().Wrap(
		NewRecordService(storages.ProfileRepository, storages.PrivateRecordRepository, logger),
	)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg, logger),
		RecordService:       records,
		PreferenceService:   NewPreferenceDocumentService(storages.PreferenceDocumentRepository, logger),
		PublicRecordService: NewPublicRecordService(storages.PublicRecordRepository, logger),
		AppInfoService:      appInfo,
	}, nil
}
