// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-fit-keeper client and server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request- or
// session-scoped loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label (e.g. "server")
// that writes JSON to os.Stdout.
//
// Every entry carries the "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	configureGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that appends to the file at path so
// that log lines do not corrupt the terminal UI. An empty path selects a
// "logs" file next to the executable. Falls back to os.Stdout when the file
// cannot be opened.
func NewClientLogger(role, path string) *Logger {
	configureGlobals()

	if strings.TrimSpace(path) == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var w io.Writer = os.Stdout
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		w = logFile
	}

	return newLogger(w, role)
}

// SetLevel changes the global level. Unknown names leave the level unchanged
// and return false.
func SetLevel(level string) bool {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return false
	}
	zerolog.SetGlobalLevel(parsed)
	return true
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForSession returns a child logger tagged with the sync session and account.
func (l *Logger) ForSession(sessionID string, accountID int64) *Logger {
	return &Logger{l.With().
		Str("session_id", sessionID).
		Int64("account_id", accountID).
		Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If none is attached
// zerolog returns its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
