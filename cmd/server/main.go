// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/handler"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/server"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-fit-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("metrics", cfg.Server.MetricsEnabled).Msg("received configs")

	storages, err := store.NewServerStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
