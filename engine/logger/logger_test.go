package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		level zapcore.Level
	}{
		{"production json", Config{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"development console", Config{Level: "debug", Format: "console", Development: true}, zapcore.DebugLevel},
		{"unknown level falls back to info", Config{Level: "chatty"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.True(t, log.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestOr(t *testing.T) {
	assert.NotNil(t, Or(nil))
	log := zap.NewExample()
	assert.Same(t, log, Or(log))
}
