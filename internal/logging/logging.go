// Package logging provides structured logging configuration.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration options.
type Config struct {
	Level string // off|error|warn|info|debug|trace
}

// New creates a configured zap logger writing to stdout. The level names
// mirror the operator surface: "trace" maps to zap's debug level and "off"
// yields a no-op logger. Any other unknown name is an error.
func New(cfg Config) (*zap.Logger, error) {
	var level zapcore.Level
	switch strings.ToLower(cfg.Level) {
	case "off":
		return zap.NewNop(), nil
	case "error":
		level = zapcore.ErrorLevel
	case "warn":
		level = zapcore.WarnLevel
	case "info", "":
		level = zapcore.InfoLevel
	case "debug", "trace":
		level = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("invalid log level %q, needs to be one of: off, error, warn, info, debug or trace", cfg.Level)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.DisableCaller = true
	zcfg.DisableStacktrace = true

	return zcfg.Build()
}

// Sync flushes any buffered log entries.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}

// Path returns a zap field for a filesystem path.
func Path(path string) zap.Field { return zap.String("path", path) }

// URL returns a zap field for a request URL.
func URL(url string) zap.Field { return zap.String("url", url) }

// Count returns a zap field for a record count.
func Count(n int) zap.Field { return zap.Int("count", n) }

// NoradIDs returns a zap field for the requested catalog IDs.
func NoradIDs(ids []int) zap.Field { return zap.Ints("norad_ids", ids) }

// Username returns a zap field for the provider identity.
func Username(name string) zap.Field { return zap.String("username", name) }

// ConfigFile returns a zap field for the settings file path.
func ConfigFile(path string) zap.Field { return zap.String("config_file", path) }
