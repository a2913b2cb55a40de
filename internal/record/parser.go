package record

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Format selects how input lines are decoded
type Format string

const (
	// FormatTSV is tab-delimited name=value fields
	FormatTSV Format = "tsv"
	// FormatJSONL is one JSON object per line
	FormatJSONL Format = "jsonl"
)

// ParserFor returns the line parser for the given format, or nil if the
// format is unknown.
func ParserFor(f Format) func(string) (Record, error) {
	switch f {
	case FormatTSV, "":
		return ParseLine
	case FormatJSONL:
		return ParseJSONLine
	default:
		return nil
	}
}

// ParseLine parses one tab-delimited line into a Record.
//
// Each field is split on its rightmost '=', so "a=b=c" yields the name
// "a=b" with value "c". A field with no '=' fails with *MalformedFieldError;
// a blank line has one empty field and fails the same way.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	rec := make(Record, len(fields))
	for _, field := range fields {
		idx := strings.LastIndex(field, "=")
		if idx < 0 {
			return nil, &MalformedFieldError{Field: field}
		}
		rec[field[:idx]] = ParseValue(field[idx+1:])
	}
	return rec, nil
}

// ParseValue converts raw text to a Number if it parses as a float and
// to Text otherwise. The raw text is kept on both variants.
func ParseValue(raw string) Value {
	if f, ok := parseFloat(raw); ok {
		return Value{kind: KindNumber, num: f, raw: raw}
	}
	return Text(raw)
}

// parseFloat accepts decimal literals with optional surrounding
// whitespace, inf, infinity and nan in any case. Overflow saturates to
// ±Inf. Hexadecimal literals are rejected.
func parseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ParseJSONLine parses one JSON object into a Record. JSON numbers become
// Numbers, strings become Text, and any other value becomes Text holding
// its raw JSON.
func ParseJSONLine(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if !gjson.Valid(line) {
		return nil, &MalformedRecordError{Line: line}
	}
	doc := gjson.Parse(line)
	if !doc.IsObject() {
		return nil, &MalformedRecordError{Line: line}
	}

	rec := make(Record)
	doc.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Number:
			rec[key.String()] = Value{kind: KindNumber, num: value.Float(), raw: value.Raw}
		case gjson.String:
			rec[key.String()] = Text(value.String())
		default:
			rec[key.String()] = Text(value.Raw)
		}
		return true
	})
	return rec, nil
}
