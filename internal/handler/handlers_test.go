// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.ServerConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
