package mock

import (
	"context"

	"github.com/Sravan-create/fedreg"
)

var _ fedreg.AnswerService = (*AnswerService)(nil)

// AnswerService is a mock implementation of fedreg.AnswerService.
type AnswerService struct {
	AnswerQueryFn func(ctx context.Context, query string) (*fedreg.Answer, error)
}

func (s *AnswerService) AnswerQuery(ctx context.Context, query string) (*fedreg.Answer, error) {
	return s.AnswerQueryFn(ctx, query)
}

var _ fedreg.Generator = (*Generator)(nil)

// Generator is a mock implementation of fedreg.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, query, docContext string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, query, docContext string) (string, error) {
	return g.GenerateFn(ctx, query, docContext)
}
