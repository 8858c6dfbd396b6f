// Package slog provides logging decorators for dataminer services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dataminer"
)

// Ensure LoggingFetcher implements dataminer.Fetcher.
var _ dataminer.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   dataminer.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next dataminer.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	f.logger.Debug("fetching url", "url", url)
	defer func(begin time.Time) {
		// Failures are reported by the caller.
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelDebug
		}
		f.logger.Log(ctx, level, "fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
