package config

import (
	"fmt"
	"strings"
)

var (
	validFormats      = []string{"text", "json", "yaml", "yml"}
	validInputFormats = []string{"tsv", "jsonl"}
)

// ValidationError represents an option validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid option '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid options: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks that the options describe a runnable invocation.
//
// Returns nil if valid, or a *ValidationErrors containing every problem.
func (o Options) Validate() error {
	errs := &ValidationErrors{}

	validateNames("metric", o.Metrics, errs)
	validateNames("statistic", o.Statistics, errs)

	if len(o.Files) == 0 {
		errs.Add("", "at least one input file is required")
	}

	for _, p := range o.Percentiles {
		if p <= 0 || p > 100 {
			errs.Add("percentiles", fmt.Sprintf("%v is out of range (0, 100]", p))
		}
	}

	if o.Format != "" && !contains(validFormats, strings.ToLower(o.Format)) {
		errs.Add("format", fmt.Sprintf("unknown format %q (valid: %s)", o.Format, strings.Join(validFormats, ", ")))
	}
	if o.InputFormat != "" && !contains(validInputFormats, o.InputFormat) {
		errs.Add("input-format", fmt.Sprintf("unknown input format %q (valid: %s)", o.InputFormat, strings.Join(validInputFormats, ", ")))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateNames(field string, names []string, errs *ValidationErrors) {
	if len(names) == 0 {
		errs.Add(field, "is required")
		return
	}
	for i, name := range names {
		if name == "" {
			errs.Add(field, fmt.Sprintf("item %d is empty", i+1))
		}
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
