/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" Error ", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLevel(tc.input), "input %q", tc.input)
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("bloomctl", "test", "debug")
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger = NewStructuredLogger("bloomctl", "test", "error")
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, LevelFromEnv())
}
