package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sravan-create/fedreg"
)

// Ensure LoggingDocumentSource implements fedreg.DocumentSource.
var _ fedreg.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with logging.
type LoggingDocumentSource struct {
	next   fedreg.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next fedreg.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// FetchPage delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) FetchPage(ctx context.Context, window fedreg.DateWindow, page int) (result *fedreg.DocumentPage, err error) {
	defer func(begin time.Time) {
		count := 0
		if result != nil {
			count = len(result.Documents)
		}
		s.logger.Info("page fetch",
			"page", page,
			"from", window.From.Format(time.DateOnly),
			"to", window.To.Format(time.DateOnly),
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPage(ctx, window, page)
}
