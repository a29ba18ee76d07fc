package main

import (
	"fmt"
	"time"

	"github.com/Sravan-create/fedreg"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	count, err := deps.Documents.CountDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documents: %d\n", count)

	if count == 0 {
		return nil
	}

	newest, err := deps.Documents.FindDocuments(deps.Ctx, fedreg.DocumentFilter{Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		return err
	}
	if len(newest) > 0 && !newest[0].PublicationDate.IsZero() {
		fmt.Fprintf(deps.Stdout, "Newest publication date: %s\n", newest[0].PublicationDate.Format(time.DateOnly))
	}

	return nil
}
