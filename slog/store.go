package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dataminer"
)

// Ensure LoggingStore implements dataminer.Store.
var _ dataminer.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with logging.
type LoggingStore struct {
	next   dataminer.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next dataminer.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Store delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Store(ctx context.Context, records dataminer.ResultSet, format dataminer.Format, name string) (out *dataminer.Output, err error) {
	defer func(begin time.Time) {
		path := ""
		if out != nil {
			path = out.Path
		}
		s.logger.Debug("store",
			"format", string(format),
			"name", name,
			"path", path,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Store(ctx, records, format, name)
}
