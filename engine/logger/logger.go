// Package logger builds the zap loggers shared by the engine and its walk controllers.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger flavour.
type Config struct {
	// Level is a zap level name ("debug", "info", "warn", "error"). Unknown names fall back to info.
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
	// Development enables colored levels and caller-friendly development defaults.
	Development bool `yaml:"development"`
}

// NewLogger creates a zap logger from the config.
//
// Parameters:
//   - cfg: logger configuration
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: error if zap cannot build the logger
func NewLogger(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	// Per-tick debug logs would flood the sink at frame rate.
	zapConfig.Sampling = &zap.SamplingConfig{Initial: 10, Thereafter: 100}

	log, err := zapConfig.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// Or returns log, or a no-op logger when log is nil.
//
// Parameters:
//   - log: a logger or nil
//
// Returns:
//   - *zap.Logger: a usable logger
func Or(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
