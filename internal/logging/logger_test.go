package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel, zapcore.InvalidLevel},
		{"info", "json", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)

			core := logger.Core()
			assert.True(t, core.Enabled(tt.enabled))

			if tt.disabled != zapcore.InvalidLevel {
				assert.False(t, core.Enabled(tt.disabled))
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("loud", "json")
	require.ErrorContains(t, err, `log level "loud"`)

	_, err = New("info", "xml")
	require.ErrorContains(t, err, "unknown log format")
}
