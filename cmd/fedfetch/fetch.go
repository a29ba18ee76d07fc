package main

import (
	"fmt"
	"time"

	"github.com/Sravan-create/fedreg"
	"github.com/Sravan-create/fedreg/ingest"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	window, err := c.window()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		return err
	}

	if c.DryRun {
		return c.runPreview(deps, window)
	}
	return c.runFetch(deps, window)
}

func (c *FetchCmd) window() (fedreg.DateWindow, error) {
	from, err := time.Parse(time.DateOnly, c.From)
	if err != nil {
		return fedreg.DateWindow{}, fedreg.Errorf(fedreg.EINVALID, "invalid from date %q, expected YYYY-MM-DD", c.From)
	}
	to, err := time.Parse(time.DateOnly, c.To)
	if err != nil {
		return fedreg.DateWindow{}, fedreg.Errorf(fedreg.EINVALID, "invalid to date %q, expected YYYY-MM-DD", c.To)
	}

	window := fedreg.DateWindow{From: from, To: to}
	return window, window.Validate()
}

// runPreview fetches only the first page and reports the plan.
func (c *FetchCmd) runPreview(deps *Dependencies, window fedreg.DateWindow) error {
	page, err := deps.Source.FetchPage(deps.Ctx, window, 1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot reach document source: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d documents across %d pages for %s..%s\n",
		page.Count, page.TotalPages,
		window.From.Format(time.DateOnly), window.To.Format(time.DateOnly))
	return nil
}

func (c *FetchCmd) runFetch(deps *Dependencies, window fedreg.DateWindow) error {
	progress := func(e ingest.ProgressEvent) {
		switch e.Type {
		case ingest.ProgressPageFetched:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d pages]", e.Page, e.TotalPages)
		case ingest.ProgressPageFailed:
			fmt.Fprintf(deps.Stderr, "\nskip page %d: %v\n", e.Page, e.Err)
		case ingest.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r%40s\r", "")
		}
	}

	result, err := deps.Ingestor.Run(deps.Ctx, window, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d documents (%d already known, %d pages failed)\n",
		result.Saved, result.Skipped, result.FailedPages)
	return nil
}
