package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level       string
		development bool
		enabled     zapcore.Level
		disabled    zapcore.Level
	}{
		{"", false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"debug", true, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn", false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"ERROR", true, zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.development)
		require.NoError(t, err, "level %q", tt.level)
		assert.True(t, logger.Core().Enabled(tt.enabled), "level %q should enable %s", tt.level, tt.enabled)
		assert.False(t, logger.Core().Enabled(tt.disabled), "level %q should disable %s", tt.level, tt.disabled)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := New("loud", false)
	assert.Error(t, err)
	assert.Nil(t, logger)
}
