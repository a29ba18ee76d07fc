// Package slog provides logging decorators for fedreg services using the
// standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sravan-create/fedreg"
)

// Ensure LoggingDocumentService implements fedreg.DocumentService.
var _ fedreg.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   fedreg.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next fedreg.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *fedreg.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create document",
			"id", doc.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (doc *fedreg.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find document by id",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter fedreg.DocumentFilter) (docs []*fedreg.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("document search",
			"terms", filter.Terms,
			"limit", filter.Limit,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

// CountDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) CountDocuments(ctx context.Context) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("count documents",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountDocuments(ctx)
}
