package mock

import (
	"context"

	"github.com/Sravan-create/fedreg"
)

var _ fedreg.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of fedreg.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *fedreg.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*fedreg.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter fedreg.DocumentFilter) ([]*fedreg.Document, error)
	CountDocumentsFn   func(ctx context.Context) (int, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *fedreg.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*fedreg.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter fedreg.DocumentFilter) ([]*fedreg.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) CountDocuments(ctx context.Context) (int, error) {
	return s.CountDocumentsFn(ctx)
}
