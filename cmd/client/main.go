// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fit-keeper/internal/client"
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so logs go to a file
	log := logger.NewClientLogger("go-fit-client", cfg.App.LogFile)
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
