package main

import (
	"context"
	"io"

	"github.com/Sravan-create/fedreg"
	"github.com/Sravan-create/fedreg/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Documents fedreg.DocumentService
	Source    fedreg.DocumentSource
	Ingestor  *ingest.Ingestor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Fetch FetchCmd `cmd:"" help:"Fetch documents published within a date window"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	From        string  `arg:"" help:"Window start date (YYYY-MM-DD)"`
	To          string  `arg:"" help:"Window end date (YYYY-MM-DD)"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent page fetch limit"`
	RateLimit   float64 `default:"1" help:"API requests per second"`
	DryRun      bool    `help:"Show the page plan without writing documents"`
}
