package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/wesleyorama2/cvstats/internal/aggregate"
)

// Formatter renders summaries as the one-line text report:
//
//	EXACT, skippingF1: 0.7000 +- 0.1414  (SE: 0.1000) [2]
//
// In verbose mode the trailing count is replaced by the contributing files.
type Formatter struct {
	Verbose bool
	NoColor bool
	colors  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	colors := DefaultColorScheme()
	if noColor {
		colors = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		colors:  colors,
	}
}

// FormatSummary formats one summary as a newline-terminated report line
func (f *Formatter) FormatSummary(s *aggregate.Summary) string {
	var buf strings.Builder

	buf.WriteString(f.colors.Label.Sprint(s.Metric + ", " + s.Statistic + ":"))
	buf.WriteString(" ")
	buf.WriteString(f.colors.Value.Sprint(formatFixed(s.Mean)))
	buf.WriteString(" +- ")
	buf.WriteString(f.colors.Spread.Sprint(formatFixed(s.StdDev)))
	buf.WriteString("  (SE: ")
	buf.WriteString(f.colors.Spread.Sprint(formatFixed(s.StdErr)))
	buf.WriteString(")")

	if len(s.Percentiles) > 0 {
		buf.WriteString(" (")
		for i, p := range s.Percentiles {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString("p" + strconv.FormatFloat(p.Quantile, 'f', -1, 64) + ": " + formatFixed(p.Value))
		}
		buf.WriteString(")")
	}

	if f.Verbose {
		buf.WriteString(" <= ")
		for i, file := range s.Files {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(f.colors.File.Sprint(file))
		}
	} else {
		buf.WriteString(" ")
		buf.WriteString(f.colors.Count.Sprint("[" + strconv.Itoa(s.Count) + "]"))
	}

	buf.WriteString("\n")
	return buf.String()
}

// FormatReport formats all summaries, one line each
func (f *Formatter) FormatReport(summaries []aggregate.Summary) (string, error) {
	var buf strings.Builder
	for i := range summaries {
		buf.WriteString(f.FormatSummary(&summaries[i]))
	}
	return buf.String(), nil
}

// formatFixed prints v with four decimal places; non-finite values print
// as nan, inf and -inf.
func formatFixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
