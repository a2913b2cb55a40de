package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/cvstats/internal/aggregate"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default one-line-per-summary report
	FormatText OutputFormat = "text"
	// FormatJSON outputs a JSON array of summaries
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs a YAML list of summaries
	FormatYAML OutputFormat = "yaml"
)

// Formats lists the supported output formats
var Formats = []OutputFormat{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a format name to an OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	// FormatSummary renders a single summary
	FormatSummary(s *aggregate.Summary) string
	// FormatReport renders every summary of a run
	FormatReport(summaries []aggregate.Summary) (string, error)
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format OutputFormat, verbose, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Verbose: verbose, Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{Verbose: verbose}
	default:
		return NewFormatter(verbose, noColor)
	}
}

// structured strips the file list unless verbose output was requested
func structured(summaries []aggregate.Summary, verbose bool) []aggregate.Summary {
	out := make([]aggregate.Summary, len(summaries))
	copy(out, summaries)
	if !verbose {
		for i := range out {
			out[i].Files = nil
		}
	}
	return out
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Verbose bool
	Pretty  bool
}

// FormatSummary formats a summary as a JSON object
func (f *JSONFormatter) FormatSummary(s *aggregate.Summary) string {
	data := structured([]aggregate.Summary{*s}, f.Verbose)[0]
	output, err := f.marshal(data)
	if err != nil {
		return fmt.Sprintf(`{"error":"Failed to marshal summary: %s"}`, err)
	}
	return output + "\n"
}

// FormatReport formats all summaries as a JSON array
func (f *JSONFormatter) FormatReport(summaries []aggregate.Summary) (string, error) {
	output, err := f.marshal(structured(summaries, f.Verbose))
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return output + "\n", nil
}

func (f *JSONFormatter) marshal(v interface{}) (string, error) {
	var output []byte
	var err error
	if f.Pretty {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	Verbose bool
}

// FormatSummary formats a summary as a YAML document
func (f *YAMLFormatter) FormatSummary(s *aggregate.Summary) string {
	data := structured([]aggregate.Summary{*s}, f.Verbose)[0]
	output, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error: Failed to marshal summary: %s\n", err)
	}
	return string(output)
}

// FormatReport formats all summaries as a YAML list
func (f *YAMLFormatter) FormatReport(summaries []aggregate.Summary) (string, error) {
	output, err := yaml.Marshal(structured(summaries, f.Verbose))
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(output), nil
}
