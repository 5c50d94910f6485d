package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(Config{Level: tt.level})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "info", DefaultConfig().Level)
	assert.False(t, DefaultConfig().Development)
	assert.Equal(t, "debug", DevelopmentConfig().Level)
	assert.True(t, DevelopmentConfig().Development)

	assert.NotNil(t, NewDefault())
	assert.NotNil(t, NewDevelopment())
}

func TestEncodingFormat(t *testing.T) {
	assert.Equal(t, "console", encodingFormat(true))
	assert.Equal(t, "json", encodingFormat(false))
}
