// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. When environment is non-nil it is used instead of the process
// environment.
func parseEnv(cfg any, environment ...map[string]string) error {
	opts := env.Options{}
	if len(environment) > 0 && environment[0] != nil {
		opts.Environment = environment[0]
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
