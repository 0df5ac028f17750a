// Package app holds the use-case services behind the HTTP handlers: vote
// casting and stats, quote search, yearly ranking, quote and speaker
// management. Services depend on ports only and wrap store errors with the
// operation that failed; domain sentinels survive for errors.Is.
package app

import (
	"context"
	"log/slog"

	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
)

// scopedLogger prefers the request logger carried by ctx so request and
// trace ids appear on service logs.
func scopedLogger(ctx context.Context, fallback *slog.Logger, component string) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger.With(slog.String("component", component))
	}

	return fallback
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return logger.With(slog.String("component", component))
}
