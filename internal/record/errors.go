package record

import "fmt"

// MalformedFieldError is returned when a field has no '=' separator.
type MalformedFieldError struct {
	Field string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: missing '=' separator", e.Field)
}

// MalformedRecordError is returned when a JSON-lines record is not a JSON object.
type MalformedRecordError struct {
	Line string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: expected a JSON object", truncate(e.Line, 64))
}

// MissingFieldError is returned when a required field is absent from a record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// NotNumericError is returned when a numeric field holds text.
type NotNumericError struct {
	Field string
	Raw   string
}

func (e *NotNumericError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("value %q is not numeric", e.Raw)
	}
	return fmt.Sprintf("field %q: value %q is not numeric", e.Field, e.Raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
