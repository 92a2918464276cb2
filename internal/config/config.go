// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file; [GetClientConfig]
// and [GetServerConfig] then project the parts each binary needs.
type StructuredConfig struct {
	// App holds token, integrity and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database DSN and the client's local store
	// path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's outbound transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the sign-in synchronization budgets.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds the intervals of the client's background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Account holds the credentials the client signs in with.
	Account Account `envPrefix:"ACCOUNT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key shared by client and server for upload
	// integrity checks.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path. Empty selects a file next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server's relational database settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client's local transactional store settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings for the client's SQLite database.
type Local struct {
	// Path is the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MetricsEnabled exposes /metrics when true.
	// Env: SERVER_METRICS_ENABLED
	MetricsEnabled bool `env:"METRICS_ENABLED"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the server base address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport-level retries per request.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit breaker.
	// Env: ADAPTER_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerTimeout is how long the breaker stays open before probing.
	// Env: ADAPTER_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`
}

// Sync holds the sign-in synchronization budgets. The defaults are
// product-tuned and pending re-validation; keep them overridable.
type Sync struct {
	// PreferenceTimeout is the advisory budget of the preference pull.
	// Env: SYNC_PREFERENCE_TIMEOUT
	PreferenceTimeout time.Duration `env:"PREFERENCE_TIMEOUT"`

	// ProfileTimeout is the advisory budget of the profile pull.
	// Env: SYNC_PROFILE_TIMEOUT
	ProfileTimeout time.Duration `env:"PROFILE_TIMEOUT"`

	// PollInterval is the sleep between two local convergence reads.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollAttempts is the ceiling of local convergence reads.
	// Env: SYNC_POLL_ATTEMPTS
	PollAttempts int `env:"POLL_ATTEMPTS"`

	// MaxConsecutiveErrors aborts polling early when reached.
	// Env: SYNC_MAX_CONSECUTIVE_ERRORS
	MaxConsecutiveErrors int `env:"MAX_CONSECUTIVE_ERRORS"`

	// CompletionHold is how long the session stays at 100% before
	// announcing refreshed data.
	// Env: SYNC_COMPLETION_HOLD
	CompletionHold time.Duration `env:"COMPLETION_HOLD"`

	// WatcherInterval is the sleep between two background watcher reads.
	// Env: SYNC_WATCHER_INTERVAL
	WatcherInterval time.Duration `env:"WATCHER_INTERVAL"`

	// WatcherAttempts is the ceiling of background watcher reads.
	// Env: SYNC_WATCHER_ATTEMPTS
	WatcherAttempts int `env:"WATCHER_ATTEMPTS"`

	// ProgressFloor and ProgressCeiling bound the progress range reported
	// while awaiting local convergence.
	// Env: SYNC_PROGRESS_FLOOR, SYNC_PROGRESS_CEILING
	ProgressFloor   float64 `env:"PROGRESS_FLOOR"`
	ProgressCeiling float64 `env:"PROGRESS_CEILING"`
}

// Workers holds configuration for the client's background jobs.
type Workers struct {
	// MirrorInterval is how often local days are mirrored to the private
	// partition and remote days are merged back.
	// Env: WORKERS_MIRROR_INTERVAL
	MirrorInterval time.Duration `env:"MIRROR_INTERVAL"`

	// PreferenceWatchInterval is how often the replicated preference
	// revision is checked for changes made on other devices.
	// Env: WORKERS_PREFERENCE_WATCH_INTERVAL
	PreferenceWatchInterval time.Duration `env:"PREFERENCE_WATCH_INTERVAL"`
}

// Account holds the credentials the client signs in with.
type Account struct {
	// Login is the account login.
	// Env: ACCOUNT_LOGIN
	Login string `env:"LOGIN"`

	// Password is the account password.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the display name used when the account is registered.
	// Env: ACCOUNT_NAME
	Name string `env:"NAME"`

	// Register creates the account before signing in.
	// Env: ACCOUNT_REGISTER
	Register bool `env:"REGISTER"`
}

// DefaultSync returns the reference synchronization budgets.
func DefaultSync() Sync {
	return Sync{
		PreferenceTimeout:    2 * time.Second,
		ProfileTimeout:       2 * time.Second,
		PollInterval:         500 * time.Millisecond,
		PollAttempts:         40,
		MaxConsecutiveErrors: 3,
		CompletionHold:       500 * time.Millisecond,
		WatcherInterval:      time.Second,
		WatcherAttempts:      60,
		ProgressFloor:        0.35,
		ProgressCeiling:      0.85,
	}
}

// WithDefaults returns s with every zero field taken from [DefaultSync].
func (s Sync) WithDefaults() (Sync, error) {
	if err := mergo.Merge(&s, DefaultSync()); err != nil {
		return s, fmt.Errorf("applying sync defaults: %w", err)
	}
	return s, nil
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-fit-keeper",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "debug",
		},
		Storage: Storage{
			Local: Local{Path: "fit-keeper.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  10 * time.Second,
			RetryCount:      2,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Sync: DefaultSync(),
		Workers: Workers{
			MirrorInterval:          30 * time.Second,
			PreferenceWatchInterval: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
