// Package aggregate summarizes one statistic of one metric across a set of
// cross-validation output files.
package aggregate

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/wesleyorama2/cvstats/internal/record"
	"github.com/wesleyorama2/cvstats/internal/stats"
)

const (
	// MetricField names the field compared against the requested metric
	MetricField = "metric"
	// ExperimentField names the field the dataset suffix is matched against
	ExperimentField = "expId"

	maxLineSize = 16 * 1024 * 1024
)

// Query selects the observations to aggregate.
type Query struct {
	Metric    string
	Statistic string
	// Dataset, when set, keeps only records whose expId ends with it
	Dataset     string
	Percentiles []float64
}

// Summary is the aggregated result of one Query.
type Summary struct {
	Metric      string             `json:"metric" yaml:"metric"`
	Statistic   string             `json:"statistic" yaml:"statistic"`
	Mean        float64            `json:"mean" yaml:"mean"`
	StdDev      float64            `json:"stdDev" yaml:"stdDev"`
	StdErr      float64            `json:"stdErr" yaml:"stdErr"`
	Count       int                `json:"count" yaml:"count"`
	Files       []string           `json:"files,omitempty" yaml:"files,omitempty"`
	Percentiles []stats.Percentile `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
}

// NoObservationsError is returned when no record matches a Query.
// It stands in for the division by zero the mean would otherwise hit.
type NoObservationsError struct {
	Metric    string
	Statistic string
	Dataset   string
}

func (e *NoObservationsError) Error() string {
	msg := fmt.Sprintf("no observations for metric %q, statistic %q", e.Metric, e.Statistic)
	if e.Dataset != "" {
		msg += fmt.Sprintf(" (dataset %q)", e.Dataset)
	}
	return msg + ": division by zero"
}

// Aggregator scans input files and builds summaries.
type Aggregator struct {
	parse  func(string) (record.Record, error)
	open   func(string) (io.ReadCloser, error)
	logger *slog.Logger
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithParser sets the line parser (default record.ParseLine)
func WithParser(parse func(string) (record.Record, error)) Option {
	return func(a *Aggregator) {
		a.parse = parse
	}
}

// WithLogger sets the logger used for scan diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithOpener replaces how input paths are opened.
func WithOpener(open func(string) (io.ReadCloser, error)) Option {
	return func(a *Aggregator) {
		a.open = open
	}
}

// New creates an Aggregator with the given options
func New(options ...Option) *Aggregator {
	a := &Aggregator{
		parse: record.ParseLine,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Run scans files in order and summarizes the observations matching q.
//
// Every line must carry a metric field. expId is required only on lines
// whose metric matched while a dataset filter is set, and the statistic
// is required on every kept line. Any parse or lookup failure aborts the
// run with the file and line number attached.
func (a *Aggregator) Run(q Query, files []string) (*Summary, error) {
	var observations []float64
	var sources []string

	for _, path := range files {
		n, err := a.scanFile(path, q, func(v float64) {
			observations = append(observations, v)
			sources = append(sources, path)
		})
		if err != nil {
			return nil, err
		}
		a.logger.Debug("scanned file", "path", path, "metric", q.Metric, "statistic", q.Statistic, "matched", n)
	}

	summary, err := stats.Summarize(observations)
	if err != nil {
		return nil, &NoObservationsError{Metric: q.Metric, Statistic: q.Statistic, Dataset: q.Dataset}
	}

	result := &Summary{
		Metric:    q.Metric,
		Statistic: q.Statistic,
		Mean:      summary.Mean,
		StdDev:    summary.StdDev,
		StdErr:    summary.StdErr,
		Count:     summary.Count,
		Files:     sources,
	}

	if len(q.Percentiles) > 0 {
		result.Percentiles, err = stats.Percentiles(observations, q.Percentiles)
		if err != nil {
			return nil, fmt.Errorf("metric %q, statistic %q: %w", q.Metric, q.Statistic, err)
		}
	}

	a.logger.Debug("aggregated", "metric", q.Metric, "statistic", q.Statistic, "count", result.Count, "mean", result.Mean)
	return result, nil
}

// scanFile reads one file to completion, calling collect for each matching
// observation, and returns the number of matches.
func (a *Aggregator) scanFile(path string, q Query, collect func(float64)) (int, error) {
	f, err := a.open(path)
	if err != nil {
		return 0, fmt.Errorf("error opening input file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	matched := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		v, ok, err := a.match(scanner.Text(), q)
		if err != nil {
			return matched, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		if ok {
			collect(v)
			matched++
		}
	}
	if err := scanner.Err(); err != nil {
		return matched, fmt.Errorf("error reading %s: %w", path, err)
	}
	return matched, nil
}

func (a *Aggregator) match(line string, q Query) (float64, bool, error) {
	rec, err := a.parse(line)
	if err != nil {
		return 0, false, err
	}

	metric, err := rec.Text(MetricField)
	if err != nil {
		return 0, false, err
	}
	if metric != q.Metric {
		return 0, false, nil
	}

	if q.Dataset != "" {
		expID, err := rec.Text(ExperimentField)
		if err != nil {
			return 0, false, err
		}
		if !strings.HasSuffix(expID, q.Dataset) {
			return 0, false, nil
		}
	}

	v, err := rec.Float(q.Statistic)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// SortByMean orders summaries ascending by mean. Ties keep their input
// order and NaN means sort last.
func SortByMean(summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Mean, summaries[j].Mean
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a < b
	})
}
