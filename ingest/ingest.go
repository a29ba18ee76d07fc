// Package ingest orchestrates the paginated crawl of the Federal Register
// API into the document store. It is the only writer of the store; the
// question-answering pipeline never writes.
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/Sravan-create/fedreg"
	"github.com/Sravan-create/fedreg/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent page fetches.
const DefaultConcurrency = 4

// falsePositiveRate sizes the dedup filter. A false positive skips one
// document that INSERT OR IGNORE would have skipped anyway for re-runs,
// so a loose rate is acceptable.
const falsePositiveRate = 0.001

// Ingestor fetches documents page by page and saves them with
// insert-if-absent semantics. Re-running over an overlapping window never
// duplicates or overwrites stored documents.
type Ingestor struct {
	Source      fedreg.DocumentSource
	Documents   fedreg.DocumentService
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of an ingestion run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// Pages is the number of pages the window spans.
	Pages int

	// Fetched counts documents received from the source.
	Fetched int

	// Saved counts documents newly added to the store.
	Saved int

	// Skipped counts documents already stored or repeated across pages.
	Skipped int

	// FailedPages counts pages that still failed after retries.
	FailedPages int
}

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type       ProgressType
	Page       int
	TotalPages int
	Documents  int
	Err        error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPageFetched ProgressType = iota
	ProgressPageFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// Run ingests all documents published within the window.
// The first page is fetched alone to learn the page count; remaining pages
// are fetched concurrently. A page that fails after retries is counted and
// skipped; store failures abort the run.
func (ing *Ingestor) Run(ctx context.Context, window fedreg.DateWindow, progress ProgressFunc) (*Result, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if ing.Source == nil || ing.Documents == nil {
		return nil, fedreg.Errorf(fedreg.EINTERNAL, "ingestor requires a source and a document store")
	}

	delays := ing.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	result := &Result{RunID: uuid.New().String()}

	countBefore, err := ing.Documents.CountDocuments(ctx)
	if err != nil {
		return nil, err
	}

	first, err := FetchWithRetryDelays(ctx, func(ctx context.Context) (*fedreg.DocumentPage, error) {
		return ing.Source.FetchPage(ctx, window, 1)
	}, nil, delays)
	if err != nil {
		return nil, fedreg.Errorf(fedreg.EUNAVAILABLE, "cannot reach document source: %v", err)
	}

	result.Pages = first.TotalPages
	if result.Pages < 1 {
		result.Pages = 1
	}

	run := &runState{
		documents: ing.Documents,
		seen:      bloom.NewFilter(expectedItems(first.Count), falsePositiveRate),
		result:    result,
	}

	if err := run.save(ctx, first.Documents); err != nil {
		return nil, err
	}
	emit(progress, ProgressEvent{Type: ProgressPageFetched, Page: 1, TotalPages: result.Pages, Documents: len(first.Documents)})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for page := 2; page <= result.Pages; page++ {
		g.Go(func() error {
			fetched, err := FetchWithRetryDelays(gctx, func(ctx context.Context) (*fedreg.DocumentPage, error) {
				return ing.Source.FetchPage(ctx, window, page)
			}, nil, delays)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				run.pageFailed()
				emit(progress, ProgressEvent{Type: ProgressPageFailed, Page: page, TotalPages: result.Pages, Err: err})
				return nil
			}

			if err := run.save(gctx, fetched.Documents); err != nil {
				return err
			}
			emit(progress, ProgressEvent{Type: ProgressPageFetched, Page: page, TotalPages: result.Pages, Documents: len(fetched.Documents)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	countAfter, err := ing.Documents.CountDocuments(ctx)
	if err != nil {
		return nil, err
	}
	result.Saved = countAfter - countBefore
	result.Skipped = result.Fetched - result.Saved

	emit(progress, ProgressEvent{Type: ProgressFinished, TotalPages: result.Pages})
	return result, nil
}

// runState guards the dedup filter and counters shared across page workers.
type runState struct {
	documents fedreg.DocumentService
	mu        sync.Mutex
	seen      *bloom.Filter
	result    *Result
}

// save stores the documents of one page, skipping document numbers already
// seen during this run.
func (r *runState) save(ctx context.Context, docs []*fedreg.Document) error {
	for _, doc := range docs {
		r.mu.Lock()
		r.result.Fetched++
		dup := r.seen.Test(doc.ID)
		if !dup {
			r.seen.Add(doc.ID)
		}
		r.mu.Unlock()

		if dup {
			continue
		}
		if err := r.documents.CreateDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (r *runState) pageFailed() {
	r.mu.Lock()
	r.result.FailedPages++
	r.mu.Unlock()
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

func expectedItems(count int) uint {
	if count < 1000 {
		return 1000
	}
	return uint(count)
}
