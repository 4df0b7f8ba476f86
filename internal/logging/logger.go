// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Debug enables debug level output. Without it the logger is disabled.
	Debug bool
	// Output receives the log lines, usually stderr.
	Output io.Writer
	// NoColor disables ANSI colors in the console writer.
	NoColor bool
}

// New creates a console logger for cfg.
func New(cfg Config) zerolog.Logger {
	if !cfg.Debug || cfg.Output == nil {
		return zerolog.Nop()
	}

	output := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(cfg.Output),
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.NoColor,
	}

	return zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// FromContext extracts the logger from context.
// If no logger is found, returns a disabled logger (no-op).
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
