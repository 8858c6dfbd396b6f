// Package crawl drives extraction runs: it fetches every configured page in
// order, extracts records and hands the complete result to a store.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/dataminer"
)

// Pipeline runs extraction configs sequentially.
type Pipeline struct {
	Fetcher dataminer.Fetcher
	Parser  dataminer.Parser
	Store   dataminer.Store

	// Logger receives skip, progress and storage messages.
	// A nil Logger discards them.
	Logger *slog.Logger
}

// Report holds the outcome of a run.
type Report struct {
	// Records are all extracted records in URL-then-container order.
	Records dataminer.ResultSet

	// Skipped lists the URLs that could not be fetched, in order.
	Skipped []string

	// Output describes what the store wrote. Nil if storing failed.
	Output *dataminer.Output
}

// Run fetches every URL in cfg in order, extracts records and stores them
// once. A URL that fails to fetch is logged and skipped. Storage errors,
// such as *dataminer.SerializationError, are returned together with the
// report so the extracted records are not lost.
func (p *Pipeline) Run(ctx context.Context, cfg *dataminer.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	report := &Report{}
	for _, url := range cfg.URLs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		html, err := p.Fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Error("request failed", "url", url, "err", err)
			report.Skipped = append(report.Skipped, url)
			continue
		}

		records := dataminer.Extract(p.Parser.Parse(html), cfg.Container, cfg.Fields)
		logger.Info("found item containers", "url", url, "count", len(records))
		report.Records = append(report.Records, records...)
	}

	format := cfg.OutputFormat()
	out, err := p.Store.Store(ctx, report.Records, format, cfg.OutputName())
	if err != nil {
		logger.Error("store failed", "format", string(format), "err", err)
		return report, fmt.Errorf("store: %w", err)
	}
	report.Output = out

	if !out.Written {
		logger.Warn("no data to write", "format", string(format))
	} else {
		logger.Info("data saved", "path", out.Path, "records", out.Records)
	}

	return report, nil
}
