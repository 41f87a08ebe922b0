// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// LogLevel is the verbosity of a telemetry sink. Ordinals follow the
// conventional Trace(0)..None(6) scale so numeric values in configuration
// documents keep their meaning.
type LogLevel int

const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInformation
	LogLevelWarning
	LogLevelError
	LogLevelCritical
	LogLevelNone
)

var logLevelNames = [...]string{
	LogLevelTrace:       "Trace",
	LogLevelDebug:       "Debug",
	LogLevelInformation: "Information",
	LogLevelWarning:     "Warning",
	LogLevelError:       "Error",
	LogLevelCritical:    "Critical",
	LogLevelNone:        "None",
}

// String returns the canonical name of the level.
func (l LogLevel) String() string {
	if l.valid() {
		return logLevelNames[l]
	}
	return "LogLevel(" + strconv.Itoa(int(l)) + ")"
}

func (l LogLevel) valid() bool {
	return l >= LogLevelTrace && l <= LogLevelNone
}

// ParseLogLevel parses a level name (case-insensitive) or its ordinal.
func ParseLogLevel(s string) (LogLevel, error) {
	trimmed := strings.TrimSpace(s)
	for i, name := range logLevelNames {
		if strings.EqualFold(trimmed, name) {
			return LogLevel(i), nil
		}
	}

	n, err := strconv.Atoi(trimmed)
	if err == nil && LogLevel(n).valid() {
		return LogLevel(n), nil
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("invalid log level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
