package output

import (
	"math"
	"strings"
	"testing"

	"github.com/wesleyorama2/cvstats/internal/aggregate"
	"github.com/wesleyorama2/cvstats/internal/stats"
)

func twoRunSummary() *aggregate.Summary {
	return &aggregate.Summary{
		Metric:    "EXACT",
		Statistic: "skippingF1",
		Mean:      0.7,
		StdDev:    math.Sqrt(0.02),
		StdErr:    0.1,
		Count:     2,
		Files:     []string{"job1.out", "job2.out"},
	}
}

func TestFormatter_FormatSummary(t *testing.T) {
	formatter := NewFormatter(false, true) // not verbose, no color

	got := formatter.FormatSummary(twoRunSummary())
	want := "EXACT, skippingF1: 0.7000 +- 0.1414  (SE: 0.1000) [2]\n"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}

func TestFormatter_FormatSummaryVerbose(t *testing.T) {
	formatter := NewFormatter(true, true)

	got := formatter.FormatSummary(twoRunSummary())
	want := "EXACT, skippingF1: 0.7000 +- 0.1414  (SE: 0.1000) <= job1.out job2.out\n"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}

func TestFormatter_FormatSummaryPercentiles(t *testing.T) {
	formatter := NewFormatter(false, true)

	s := twoRunSummary()
	s.Percentiles = []stats.Percentile{{Quantile: 50, Value: 0.6}, {Quantile: 99.9, Value: 0.8}}

	got := formatter.FormatSummary(s)
	want := "EXACT, skippingF1: 0.7000 +- 0.1414  (SE: 0.1000) (p50: 0.6000 p99.9: 0.8000) [2]\n"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}

func TestFormatter_FormatReport(t *testing.T) {
	formatter := NewFormatter(false, true)

	summaries := []aggregate.Summary{
		{Metric: "EXACT", Statistic: "f1", Mean: 2, StdDev: 1, StdErr: 1 / math.Sqrt(3), Count: 3},
		{Metric: "EXACT", Statistic: "recall", Mean: 0.5, Count: 1},
	}

	got, err := formatter.FormatReport(summaries)
	if err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("FormatReport() produced %d lines, want 2", len(lines))
	}
	if lines[0] != "EXACT, f1: 2.0000 +- 1.0000  (SE: 0.5774) [3]" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "EXACT, recall: 0.5000 +- 0.0000  (SE: 0.0000) [1]" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.7, "0.7000"},
		{1.0 / 3, "0.3333"},
		{0.12345, "0.1235"},
		{-2.5, "-2.5000"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		if got := formatFixed(tt.in); got != tt.want {
			t.Errorf("formatFixed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
