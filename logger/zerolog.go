package logger

import (
	"github.com/rs/zerolog"

	"github.com/alexhholmes/multimap"
)

// Zerolog wraps a zerolog.Logger to implement multimap.Logger.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog creates a multimap.Logger from a zerolog.Logger.
func NewZerolog(logger zerolog.Logger) multimap.Logger {
	return &Zerolog{logger: logger}
}

// Error logs an error message with key-value pairs.
func (z *Zerolog) Error(msg string, args ...any) {
	z.logger.Error().Fields(args).Msg(msg)
}

// Warn logs a warning message with key-value pairs.
func (z *Zerolog) Warn(msg string, args ...any) {
	z.logger.Warn().Fields(args).Msg(msg)
}

// Info logs an info message with key-value pairs.
func (z *Zerolog) Info(msg string, args ...any) {
	z.logger.Info().Fields(args).Msg(msg)
}
