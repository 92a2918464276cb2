// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// verifyHashes enables the upload integrity middleware. It is set when
	// the server has an HMAC key configured.
	verifyHashes   bool
	metricsEnabled bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		verifyHashes:   cfg.App.HashKey != "",
		metricsEnabled: cfg.Server.MetricsEnabled,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
