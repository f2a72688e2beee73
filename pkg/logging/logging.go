/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log/slog"
	"os"
	"strings"
)

const envLogLevel = "LOG_LEVEL"

// ParseLevel converts a textual log level to a slog.Level.
// Unknown or empty values default to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromEnv returns the log level from the LOG_LEVEL environment
// variable, defaulting to INFO when unset.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(envLogLevel))
}

// NewStructuredLogger creates a JSON logger writing to stderr with the
// module and version attached to every record. Debug level enables source
// location tracking.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		"module", module,
		"version", version,
	)
}

// SetDefaultStructuredLogger sets the process-wide default logger using
// the LOG_LEVEL environment variable for verbosity.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(envLogLevel))
}

// SetDefaultStructuredLoggerWithLevel sets the process-wide default logger
// with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
