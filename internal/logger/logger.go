// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// metric scraper.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/MKhiriev/go-metric-scraper/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "scraper",
// "http") writing JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return &Logger{newZerolog(os.Stdout, role)}
}

// NewRuntimeLogger constructs the container log sink described by telemetry.
// A disabled sink yields a logger that emits nothing. Otherwise the sink's
// verbosity becomes the logger level.
//
// The global zerolog level still caps the result and is left untouched;
// callers that want Trace output lower it with zerolog.SetGlobalLevel.
func NewRuntimeLogger(role string, telemetry config.TelemetrySettings) *Logger {
	return newRuntimeLogger(os.Stdout, role, telemetry)
}

func newRuntimeLogger(w io.Writer, role string, telemetry config.TelemetrySettings) *Logger {
	level := zerolog.Disabled
	if telemetry.ContainerLogs.IsEnabled {
		level = Level(telemetry.ContainerLogs.Verbosity)
	}

	return &Logger{newZerolog(w, role).Level(level)}
}

// Level maps a configured verbosity onto the matching zerolog level.
// Critical maps to Fatal and None (or anything unknown) disables output.
func Level(v config.LogLevel) zerolog.Level {
	switch v {
	case config.LogLevelTrace:
		return zerolog.TraceLevel
	case config.LogLevelDebug:
		return zerolog.DebugLevel
	case config.LogLevelInformation:
		return zerolog.InfoLevel
	case config.LogLevelWarning:
		return zerolog.WarnLevel
	case config.LogLevelError:
		return zerolog.ErrorLevel
	case config.LogLevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

func newZerolog(w io.Writer, role string) zerolog.Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
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

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. If none has been attached,
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
