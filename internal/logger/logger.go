// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the Voy server and CLI client.
//
// Logger embeds zerolog.Logger, so Debug, Info, Err and the rest are called on
// *Logger directly. Request-scoped loggers travel in the context and are read
// back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is created next to the client executable.
const ClientLogFile = "voy.log"

type Logger struct {
	zerolog.Logger
}

var setupOnce sync.Once

// setup configures the zerolog globals once per process: every level is
// emitted and the caller is rendered as the function name under "func".
func setup() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			if fn := runtime.FuncForPC(pc); fn != nil {
				return fn.Name()
			}
			return "unknown"
		}
	})
}

// New writes JSON entries to w, each tagged with role, a timestamp and the
// calling function.
func New(w io.Writer, role string) *Logger {
	setup()

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger logs to stdout. Used by the server.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger appends to ClientLogFile beside the executable so that log
// lines do not mix with command output. It falls back to stderr when the
// file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stderr

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFile)
		if f, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); openErr == nil {
			w = f
		}
	}

	return New(w, role)
}

// Nop discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can take extra fields without touching
// the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog hands
// back its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
