// Package qa provides the retrieval-augmented question-answering pipeline.
// It coordinates keyword retrieval from the document store, context
// formatting, and answer generation.
package qa

import (
	"context"

	"github.com/Sravan-create/fedreg"
)

// DefaultMaxResults bounds how many documents a single query may retrieve.
// The bound keeps the generated context from growing without limit on broad
// queries.
const DefaultMaxResults = 200

// Ensure Service implements fedreg.AnswerService at compile time.
var _ fedreg.AnswerService = (*Service)(nil)

// Service implements fedreg.AnswerService. Each stage of the pipeline runs
// strictly after the previous one; separate queries are independent and may
// run concurrently.
type Service struct {
	Documents fedreg.DocumentService
	Generator fedreg.Generator

	// MaxResults caps retrieval. Defaults to DefaultMaxResults.
	MaxResults int

	// TitleBudget caps title length in formatted context.
	// Defaults to fedreg.DefaultTitleBudget.
	TitleBudget int
}

// Retrieve returns documents matching the query, newest first.
// A query with no usable tokens fails closed with EINVALID before any
// storage read.
func (s *Service) Retrieve(ctx context.Context, query string) ([]*fedreg.Document, error) {
	tokens := fedreg.Tokenize(query)
	if len(tokens) == 0 {
		return nil, fedreg.Errorf(fedreg.EINVALID, "query too short to search")
	}

	limit := s.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	return s.Documents.FindDocuments(ctx, fedreg.DocumentFilter{
		Terms: tokens,
		Limit: limit,
	})
}

// AnswerQuery runs the full pipeline: retrieve, format, generate.
func (s *Service) AnswerQuery(ctx context.Context, query string) (*fedreg.Answer, error) {
	docs, err := s.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fedreg.Errorf(fedreg.ENOTFOUND, "no documents match query %q", query)
	}

	docContext := fedreg.FormatDocuments(docs, s.TitleBudget)

	text, err := s.Generator.Generate(ctx, query, docContext)
	if err != nil {
		return nil, err
	}

	return &fedreg.Answer{
		Text:          text,
		SourceContext: docContext,
	}, nil
}
