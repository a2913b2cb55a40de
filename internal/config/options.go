// Package config holds the run options for cvstats and loads optional
// defaults from a YAML file.
package config

import (
	"strings"
)

// Options is the immutable configuration of one invocation. It is built
// once from the command line (and an optional config file) and passed to
// the aggregator and the report formatter.
type Options struct {
	Metrics     []string
	Statistics  []string
	Dataset     string
	Sort        bool
	Verbose     bool
	Percentiles []float64
	Format      string
	InputFormat string
	NoColor     bool
	Files       []string
}

// SplitList splits a comma-separated list. Empty items are kept so that
// validation can report them.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Apply overlays the values of a config file onto o, skipping any option
// named in set (those were given explicitly on the command line).
func (o Options) Apply(f *File, set map[string]bool) Options {
	if f == nil {
		return o
	}
	if !set["metric"] && len(f.Metrics) > 0 {
		o.Metrics = append([]string(nil), f.Metrics...)
	}
	if !set["statistic"] && len(f.Statistics) > 0 {
		o.Statistics = append([]string(nil), f.Statistics...)
	}
	if !set["dataset"] && f.Dataset != "" {
		o.Dataset = f.Dataset
	}
	if !set["sort"] && f.Sort {
		o.Sort = true
	}
	if !set["verbose"] && f.Verbose {
		o.Verbose = true
	}
	if !set["percentiles"] && len(f.Percentiles) > 0 {
		o.Percentiles = append([]float64(nil), f.Percentiles...)
	}
	if !set["format"] && f.Format != "" {
		o.Format = f.Format
	}
	if !set["input-format"] && f.InputFormat != "" {
		o.InputFormat = f.InputFormat
	}
	if !set["no-color"] && f.NoColor {
		o.NoColor = true
	}
	return o
}
