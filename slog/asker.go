package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfinder"
)

// Ensure LoggingAsker implements docfinder.Asker.
var _ docfinder.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   docfinder.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next docfinder.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation. Prompt and
// answer sizes are logged rather than their contents, which can run to tens
// of kilobytes.
func (a *LoggingAsker) Ask(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"prompt_bytes", len(prompt),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, prompt)
}
