// Package loggers builds the zerolog loggers used across the pipeline and
// holds the shared field vocabulary.
package loggers

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is an alias so callers do not import zerolog directly.
type Logger = zerolog.Logger

// New builds a JSON logger at the given level. Output goes to stderr so
// stdout stays free for CLI report output. Timestamps are UTC.
func New(level string) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(os.Stderr).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts the request- or run-scoped logger from the context, falling
// back to a no-op logger. A package variable so tests can intercept it.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
