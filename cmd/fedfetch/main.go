package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Sravan-create/fedreg/federalregister"
	"github.com/Sravan-create/fedreg/ingest"
	fedslog "github.com/Sravan-create/fedreg/slog"
	"github.com/Sravan-create/fedreg/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fedfetch"),
		kong.Description("Ingest Federal Register documents into the local store"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fedfetch --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FEDREG_DB to use a different database path\n")
		return fmt.Errorf("failed to open document store at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	documents := fedslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), logger)
	source := fedslog.NewLoggingDocumentSource(
		federalregister.NewClient(federalregister.WithRateLimit(cli.Fetch.RateLimit)),
		logger,
	)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Documents: documents,
		Source:    source,
		Ingestor: &ingest.Ingestor{
			Source:      source,
			Documents:   documents,
			Concurrency: cli.Fetch.Concurrency,
		},
	}

	return kongCtx.Run(deps)
}

// newLogger builds the CLI logger. Debug logging is opt-in.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("FEDREG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fedreg.db"
	}
	dir := filepath.Join(home, ".fedreg")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fedreg.db")
}
