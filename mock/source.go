package mock

import (
	"context"

	"github.com/Sravan-create/fedreg"
)

var _ fedreg.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of fedreg.DocumentSource.
type DocumentSource struct {
	FetchPageFn func(ctx context.Context, window fedreg.DateWindow, page int) (*fedreg.DocumentPage, error)
}

func (s *DocumentSource) FetchPage(ctx context.Context, window fedreg.DateWindow, page int) (*fedreg.DocumentPage, error) {
	return s.FetchPageFn(ctx, window, page)
}
