// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// alpaca-mcp binary.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// The server writes JSON logs to stderr because stdout carries the stdio
// protocol stream. The installer uses NewConsoleLogger for human-readable
// output.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// QuietClient is the MCP_CLIENT value that asks for error-only logging.
const QuietClient = "pycharm"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON *Logger for the given role label
// (e.g. "server", "installer") writing to w.
//
// The logger is configured with:
//   - the given minimum level;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger returns a human-readable logger for interactive commands.
// Caller information is omitted.
func NewConsoleLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	logger := zerolog.New(cw).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// LevelFor picks the verbosity from the operator hints: the quiet client
// wins over debug, debug wins over the info default.
func LevelFor(mcpClient string, debug bool) zerolog.Level {
	switch {
	case strings.EqualFold(strings.TrimSpace(mcpClient), QuietClient):
		return zerolog.ErrorLevel
	case debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Infof and Errorf let *Logger stand in for the printf-style logger the MCP
// transports accept.
func (l *Logger) Infof(format string, v ...any) {
	l.Info().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Msg(fmt.Sprintf(format, v...))
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
