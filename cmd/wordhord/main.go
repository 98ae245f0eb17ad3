package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/wordhord"
	"github.com/fwojciec/wordhord/fs"
	"github.com/fwojciec/wordhord/goquery"
	wordhordhttp "github.com/fwojciec/wordhord/http"
	wordhordslog "github.com/fwojciec/wordhord/slog"
	"github.com/fwojciec/wordhord/sqlite"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	m.Color = term.IsTerminal(int(os.Stdout.Fd()))
	m.Progress = term.IsTerminal(int(os.Stderr.Fd()))

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Highlight headwords in results. Set before calling Run().
	Color bool

	// Print progress dots on stderr while the document loads.
	Progress bool

	// In-memory database holding the built dictionary.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordhord"),
		kong.Description("Search an Anglo-Saxon dictionary document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'wordhord --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, location := m.fetcher(cli, logger)
	defer fetcher.Close()

	var extractor wordhord.Extractor = goquery.NewExtractor()
	if logger != nil {
		extractor = wordhordslog.NewLoggingExtractor(extractor, logger)
	}

	var progress io.Writer
	if m.Progress {
		progress = stderr
	}

	html, err := load(ctx, fetcher, location, progress)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", wordhord.ErrorMessage(err))
		return err
	}

	entries, err := extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", wordhord.ErrorMessage(err))
		return err
	}

	m.DB = sqlite.NewDB(sqlite.MemoryPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer m.Close()

	dict, err := sqlite.BuildDictionary(ctx, m.DB, entries)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", wordhord.ErrorMessage(err))
		return err
	}

	deps.Dictionary = dict
	if logger != nil {
		if n, err := dict.Count(ctx); err == nil {
			logger.Info("index", "entries", n)
		}
		deps.Dictionary = wordhordslog.NewLoggingDictionary(dict, logger)
	}

	deps.Highlight = color.New(color.FgBlue, color.Bold)
	if m.Color {
		deps.Highlight.EnableColor()
	} else {
		deps.Highlight.DisableColor()
	}

	return kongCtx.Run(deps)
}

// fetcher returns the fetcher for the selected source and the location to
// pass to it.
func (m *Main) fetcher(cli *CLI, logger *slog.Logger) (wordhord.Fetcher, string) {
	var f wordhord.Fetcher
	location := cli.File
	if cli.URL != "" {
		f = wordhordhttp.NewFetcher(
			wordhordhttp.WithTimeout(cli.Timeout),
			wordhordhttp.WithRetryDelays(retryDelays(cli.Retries)...),
		)
		location = cli.URL
	} else {
		f = fs.NewFetcher()
	}

	if logger != nil {
		f = wordhordslog.NewLoggingFetcher(f, logger)
	}
	return f, location
}

// retryDelays returns n exponential backoff delays starting at one second.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}
