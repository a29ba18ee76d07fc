package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sravan-create/fedreg"
)

// Ensure LoggingGenerator implements fedreg.Generator.
var _ fedreg.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   fedreg.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next fedreg.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
// The document context is logged by size only; it can be large.
func (g *LoggingGenerator) Generate(ctx context.Context, query, docContext string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("answer generation",
			"query", query,
			"context_bytes", len(docContext),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, query, docContext)
}
