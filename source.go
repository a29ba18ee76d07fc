package fedreg

import (
	"context"
	"time"
)

// DateWindow bounds an ingestion run by publication date, inclusive.
type DateWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate returns an error if the window is malformed.
func (w DateWindow) Validate() error {
	if w.From.IsZero() || w.To.IsZero() {
		return Errorf(EINVALID, "date window requires both from and to dates")
	}
	if w.To.Before(w.From) {
		return Errorf(EINVALID, "date window end precedes start")
	}
	return nil
}

// DocumentPage is one page of results from a document source.
type DocumentPage struct {
	Documents   []*Document `json:"documents"`
	Count       int         `json:"count"`
	TotalPages  int         `json:"totalPages"`
	NextPageURL string      `json:"nextPageUrl"`
}

// DocumentSource fetches documents from the upstream publication API.
type DocumentSource interface {
	// FetchPage retrieves one page of documents published within the
	// window. Pages are 1-based.
	FetchPage(ctx context.Context, window DateWindow, page int) (*DocumentPage, error)
}
