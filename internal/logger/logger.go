// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-note-keeper service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains request-scoped
// loggers via FromContext or FromRequest.
//
// Note titles, note bodies, ciphertext and session data keys must never be
// attached to a log event. Identifiers (note_id, note_tree_id) are fine.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "note-server", "session-sweeper").
//
// Every entry carries the "role" field, a timestamp and a "func" caller
// field holding the fully-qualified function name. Output is JSON on stdout.
// The global level defaults to Debug; use [SetLevel] to change it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global zerolog level. An empty string keeps the
// current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop returns a *Logger that discards all log output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithNote returns a child logger tagged with the note identifier.
func (l *Logger) WithNote(noteID string) *Logger {
	return &Logger{l.With().Str("note_id", noteID).Logger()}
}

// FromRequest extracts the logger attached to the request context by
// zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the logger stored in ctx by zerolog's log.Ctx helper.
//
// If no logger has been attached, zerolog falls back to its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
