// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			Path string `json:"path"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MetricsEnabled bool     `json:"metrics_enabled"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RetryCount      int      `json:"retry_count"`
		BreakerFailures uint32   `json:"breaker_failures"`
		BreakerTimeout  Duration `json:"breaker_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		PreferenceTimeout    Duration `json:"preference_timeout"`
		ProfileTimeout       Duration `json:"profile_timeout"`
		PollInterval         Duration `json:"poll_interval"`
		PollAttempts         int      `json:"poll_attempts"`
		MaxConsecutiveErrors int      `json:"max_consecutive_errors"`
		CompletionHold       Duration `json:"completion_hold"`
		WatcherInterval      Duration `json:"watcher_interval"`
		WatcherAttempts      int      `json:"watcher_attempts"`
		ProgressFloor        float64  `json:"progress_floor"`
		ProgressCeiling      float64  `json:"progress_ceiling"`
	} `json:"sync,omitempty"`

	Workers struct {
		MirrorInterval          Duration `json:"mirror_interval"`
		PreferenceWatchInterval Duration `json:"preference_watch_interval"`
	} `json:"workers,omitempty"`

	Account struct {
		Login    string `json:"login"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Register bool   `json:"register"`
	} `json:"account,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Local: Local{Path: jsonCfg.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MetricsEnabled: jsonCfg.Server.MetricsEnabled,
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:      jsonCfg.Adapter.RetryCount,
			BreakerFailures: jsonCfg.Adapter.BreakerFailures,
			BreakerTimeout:  time.Duration(jsonCfg.Adapter.BreakerTimeout),
		},
		Sync: Sync{
			PreferenceTimeout:    time.Duration(jsonCfg.Sync.PreferenceTimeout),
			ProfileTimeout:       time.Duration(jsonCfg.Sync.ProfileTimeout),
			PollInterval:         time.Duration(jsonCfg.Sync.PollInterval),
			PollAttempts:         jsonCfg.Sync.PollAttempts,
			MaxConsecutiveErrors: jsonCfg.Sync.MaxConsecutiveErrors,
			CompletionHold:       time.Duration(jsonCfg.Sync.CompletionHold),
			WatcherInterval:      time.Duration(jsonCfg.Sync.WatcherInterval),
			WatcherAttempts:      jsonCfg.Sync.WatcherAttempts,
			ProgressFloor:        jsonCfg.Sync.ProgressFloor,
			ProgressCeiling:      jsonCfg.Sync.ProgressCeiling,
		},
		Workers: Workers{
			MirrorInterval:          time.Duration(jsonCfg.Workers.MirrorInterval),
			PreferenceWatchInterval: time.Duration(jsonCfg.Workers.PreferenceWatchInterval),
		},
		Account: Account{
			Login:    jsonCfg.Account.Login,
			Password: jsonCfg.Account.Password,
			Name:     jsonCfg.Account.Name,
			Register: jsonCfg.Account.Register,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
