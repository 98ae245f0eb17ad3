package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordhord"
)

// Ensure LoggingDictionary implements wordhord.Dictionary.
var _ wordhord.Dictionary = (*LoggingDictionary)(nil)

// LoggingDictionary wraps a Dictionary with logging.
type LoggingDictionary struct {
	next   wordhord.Dictionary
	logger *slog.Logger
}

// NewLoggingDictionary creates a new LoggingDictionary.
func NewLoggingDictionary(next wordhord.Dictionary, logger *slog.Logger) *LoggingDictionary {
	return &LoggingDictionary{next: next, logger: logger}
}

// Search delegates to the wrapped dictionary and logs the operation.
func (d *LoggingDictionary) Search(ctx context.Context, query string, limit int) (entries []*wordhord.Entry, err error) {
	defer func(begin time.Time) {
		d.logger.Info("search",
			"query", query,
			"limit", limit,
			"results", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Search(ctx, query, limit)
}

// Define delegates to the wrapped dictionary and logs the operation.
func (d *LoggingDictionary) Define(ctx context.Context, query string) (entries []*wordhord.Entry, err error) {
	defer func(begin time.Time) {
		d.logger.Info("define",
			"query", query,
			"results", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Define(ctx, query)
}
