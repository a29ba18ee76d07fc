package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sravan-create/fedreg"
)

// listTitleBudget keeps listing lines terminal-friendly.
const listTitleBudget = 80

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	terms := fedreg.Tokenize(strings.Join(c.Terms, " "))
	if len(c.Terms) > 0 && len(terms) == 0 {
		fmt.Fprintln(deps.Stderr, "Keywords are too short to search. Use at least one keyword of three or more characters.")
		return fedreg.Errorf(fedreg.EINVALID, "keywords too short to search")
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, fedreg.DocumentFilter{
		Terms: terms,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Run 'fedfetch' to ingest documents.")
		return nil
	}

	for _, doc := range docs {
		date := "          "
		if !doc.PublicationDate.IsZero() {
			date = doc.PublicationDate.Format(time.DateOnly)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-14s  %s\n", date, doc.ID, fedreg.Shorten(doc.Title, listTitleBudget))
	}

	return nil
}
