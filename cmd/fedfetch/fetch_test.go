package main_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Sravan-create/fedreg"
	main "github.com/Sravan-create/fedreg/cmd/fedfetch"
	"github.com/Sravan-create/fedreg/ingest"
	"github.com/Sravan-create/fedreg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memService is a minimal in-memory store for command tests.
func memService() *mock.DocumentService {
	var mu sync.Mutex
	docs := make(map[string]*fedreg.Document)
	return &mock.DocumentService{
		CreateDocumentFn: func(_ context.Context, doc *fedreg.Document) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := docs[doc.ID]; !ok {
				docs[doc.ID] = doc
			}
			return nil
		},
		CountDocumentsFn: func(context.Context) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			return len(docs), nil
		},
	}
}

func testSource() *mock.DocumentSource {
	return &mock.DocumentSource{
		FetchPageFn: func(_ context.Context, _ fedreg.DateWindow, page int) (*fedreg.DocumentPage, error) {
			return &fedreg.DocumentPage{
				Documents: []*fedreg.Document{
					{ID: "2024-09233", Title: "EPA Clean Air Rule"},
				},
				Count:      1,
				TotalPages: 1,
			}, nil
		},
	}
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches window and reports totals", func(t *testing.T) {
		t.Parallel()

		documents := memService()
		source := testSource()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
			Source:    source,
			Ingestor: &ingest.Ingestor{
				Source:      source,
				Documents:   documents,
				Concurrency: 1,
				RetryDelays: []time.Duration{0},
			},
		}

		cmd := &main.FetchCmd{From: "2024-01-01", To: "2024-06-30"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 1 documents")
	})

	t.Run("dry run reports the plan without writing", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			CreateDocumentFn: func(context.Context, *fedreg.Document) error {
				t.Fatal("dry run must not write")
				return nil
			},
		}
		source := testSource()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
			Source:    source,
		}

		cmd := &main.FetchCmd{From: "2024-01-01", To: "2024-06-30", DryRun: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 documents across 1 pages")
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.FetchCmd{From: "01/01/2024", To: "2024-06-30"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, fedreg.EINVALID, fedreg.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid from date")
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FetchCmd{From: "2024-06-30", To: "2024-01-01"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, fedreg.EINVALID, fedreg.ErrorCode(err))
	})
}
