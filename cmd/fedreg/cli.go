package main

import (
	"context"
	"io"

	"github.com/Sravan-create/fedreg"
	"github.com/Sravan-create/fedreg/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents fedreg.DocumentService
	Answers   fedreg.AnswerService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Ask   AskCmd   `cmd:"" help:"Ask a question about stored documents"`
	Docs  DocsCmd  `cmd:"" help:"List stored documents, optionally filtered by keywords"`
	Stats StatsCmd `cmd:"" help:"Show document store statistics"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query   string `arg:"" help:"Question to ask about stored documents"`
	Sources bool   `short:"s" help:"Print the document context the answer was grounded on"`
	Limit   int    `default:"200" help:"Maximum documents to retrieve"`
	Model   string `default:"gemini-2.5-flash" help:"Generation model"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Terms []string `arg:"" optional:"" help:"Keywords to filter by"`
	Limit int      `default:"20" help:"Maximum documents to list"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
