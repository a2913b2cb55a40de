package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/wesleyorama2/cvstats/internal/aggregate"
	"github.com/wesleyorama2/cvstats/internal/config"
	"github.com/wesleyorama2/cvstats/internal/output"
	"github.com/wesleyorama2/cvstats/internal/record"
)

// queries expands the options into one query per metric and statistic,
// metric-major, in the order given.
func queries(opts config.Options) []aggregate.Query {
	qs := make([]aggregate.Query, 0, len(opts.Metrics)*len(opts.Statistics))
	for _, metric := range opts.Metrics {
		for _, statistic := range opts.Statistics {
			qs = append(qs, aggregate.Query{
				Metric:      metric,
				Statistic:   statistic,
				Dataset:     opts.Dataset,
				Percentiles: opts.Percentiles,
			})
		}
	}
	return qs
}

// run aggregates every query and writes the report to w.
//
// Unsorted text output is written as each query completes, so the lines of
// earlier queries are printed even if a later one fails. Sorted and
// structured output is written once every query has succeeded.
func run(w io.Writer, opts config.Options, logger *slog.Logger) error {
	parse := record.ParserFor(record.Format(opts.InputFormat))
	if parse == nil {
		return fmt.Errorf("unknown input format %q", opts.InputFormat)
	}
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	agg := aggregate.New(
		aggregate.WithParser(parse),
		aggregate.WithLogger(logger),
	)
	formatter := output.GetFormatter(format, opts.Verbose, colorDisabled(w, opts.NoColor))
	stream := format == output.FormatText && !opts.Sort

	var summaries []aggregate.Summary
	for _, q := range queries(opts) {
		summary, err := agg.Run(q, opts.Files)
		if err != nil {
			return err
		}
		if stream {
			if _, err := io.WriteString(w, formatter.FormatSummary(summary)); err != nil {
				return err
			}
			continue
		}
		summaries = append(summaries, *summary)
	}
	if stream {
		return nil
	}

	if opts.Sort {
		aggregate.SortByMean(summaries)
	}

	report, err := formatter.FormatReport(summaries)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, report)
	return err
}

// newLogger returns a text logger on w at warn level, or debug level when
// debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
