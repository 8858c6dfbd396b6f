package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/dataminer"
	"github.com/fwojciec/dataminer/crawl"
	"github.com/fwojciec/dataminer/fs"
	"github.com/fwojciec/dataminer/goquery"
	dmhttp "github.com/fwojciec/dataminer/http"
	"github.com/fwojciec/dataminer/rod"
	dmslog "github.com/fwojciec/dataminer/slog"
	"github.com/google/uuid"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dataminer"),
		kong.Description("Extract repeated items from web pages into JSON or CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"user_agent": dmhttp.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := cli.ExtractionConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.With("run", uuid.NewString())

	// Wire dependencies
	var fetcher dataminer.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(cli.UserAgent),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = dmhttp.NewFetcher(
			dmhttp.WithTimeout(cli.Timeout),
			dmhttp.WithUserAgent(cli.UserAgent),
		)
	}
	fetcher = crawl.NewPausingFetcher(
		dmslog.NewLoggingFetcher(fetcher, logger),
		cli.PauseMin,
		cli.PauseMax,
	)
	defer fetcher.Close()

	pipeline := &crawl.Pipeline{
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
		Store:   dmslog.NewLoggingStore(fs.NewStore(cli.Dir), logger),
		Logger:  logger,
	}

	report, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if report.Output.Written {
		fmt.Fprintf(stdout, "Saved %d records to %s\n", report.Output.Records, report.Output.Path)
	} else {
		fmt.Fprintln(stdout, "No data to write")
	}
	if n := len(report.Skipped); n > 0 {
		fmt.Fprintf(stdout, "Skipped %d of %d URLs\n", n, len(cfg.URLs))
	}

	return nil
}

// newLogger returns a logger writing timestamped, levelled lines to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, dataminer.Errorf(dataminer.EINVALID, "log level %q: %v", level, err)
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           lvl,
	})
	return slog.New(handler), nil
}
