package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docfinder"
)

// Ensure LoggingFinder implements docfinder.PageFinder.
var _ docfinder.PageFinder = (*LoggingFinder)(nil)

// LoggingFinder wraps a PageFinder with logging.
type LoggingFinder struct {
	next   docfinder.PageFinder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next docfinder.PageFinder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// FindPages delegates to the wrapped finder and logs the operation.
func (f *LoggingFinder) FindPages(question string) (matches []docfinder.PageMatch) {
	defer func(begin time.Time) {
		f.logger.Info("find pages",
			"question", question,
			"count", len(matches),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.FindPages(question)
}

// AllPageURLs delegates to the wrapped finder.
func (f *LoggingFinder) AllPageURLs() []string {
	return f.next.AllPageURLs()
}
