package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crawlkit"
)

// Ensure LoggingStore implements crawlkit.ResourceStore.
var _ crawlkit.ResourceStore = (*LoggingStore)(nil)

// LoggingStore wraps a ResourceStore with debug logging.
type LoggingStore struct {
	next   crawlkit.ResourceStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next crawlkit.ResourceStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store and logs the lookup.
func (s *LoggingStore) Exists(ctx context.Context, id string) (exists bool) {
	defer func(begin time.Time) {
		s.logger.Debug("store exists",
			"url", id,
			"exists", exists,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Exists(ctx, id)
}

// Read delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Read(ctx context.Context, id string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store read",
			"url", id,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, id)
}

// Write delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Write(ctx context.Context, id string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store write",
			"url", id,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, id, content)
}
