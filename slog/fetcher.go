// Package slog provides logging decorators for wordhord services.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordhord"
)

// Ensure LoggingFetcher implements wordhord.Fetcher.
var _ wordhord.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. The content hash identifies
// which revision of the document was indexed.
type LoggingFetcher struct {
	next   wordhord.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wordhord.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, location string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"location", location,
			"bytes", len(html),
		}
		if err == nil {
			attrs = append(attrs, "hash", strconv.FormatUint(xxhash.Sum64String(html), 16))
		}
		attrs = append(attrs,
			"duration", time.Since(begin),
			"err", err,
		)
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, location)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
