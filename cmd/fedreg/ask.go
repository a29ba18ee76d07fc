package main

import (
	"fmt"

	"github.com/Sravan-create/fedreg"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Answers.AnswerQuery(deps.Ctx, c.Query)
	if err != nil {
		switch fedreg.ErrorCode(err) {
		case fedreg.EINVALID:
			fmt.Fprintln(deps.Stderr, "Query is too short to search. Use at least one keyword of three or more characters.")
		case fedreg.ENOTFOUND:
			fmt.Fprintln(deps.Stderr, "No matching documents found. Try different keywords, or run 'fedfetch' to ingest more documents.")
		case fedreg.EUNAVAILABLE:
			fmt.Fprintf(deps.Stderr, "Document store unavailable: %s\n", fedreg.ErrorMessage(err))
		case fedreg.EGENERATION:
			fmt.Fprintf(deps.Stderr, "Answer generation failed: %s\n", fedreg.ErrorMessage(err))
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", fedreg.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Text)

	if c.Sources {
		fmt.Fprintf(deps.Stdout, "\nSources:\n\n%s\n", answer.SourceContext)
	}

	return nil
}
