// Package record parses cross-validation job output lines into records.
//
// A line is a tab-delimited list of name=value fields, for example:
//
//	metric=EXACT	expId=run1-dev	skippingF1=0.8
//
// Values that parse as floating-point numbers become numeric; everything
// else is kept as text.
package record

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindText is a raw text value
	KindText Kind = iota
	// KindNumber is a floating-point value
	KindNumber
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}

// Value is a field value: either a number or raw text.
type Value struct {
	kind Kind
	num  float64
	raw  string
}

// Number returns a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, raw: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Text returns a text value
func Text(s string) Value {
	return Value{kind: KindText, raw: s}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v holds a number
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Raw returns the text the value was parsed from.
func (v Value) Raw() string { return v.raw }

// Float returns the numeric value, or a *NotNumericError for text values.
func (v Value) Float() (float64, error) {
	if v.kind != KindNumber {
		return 0, &NotNumericError{Raw: v.raw}
	}
	return v.num, nil
}

// String returns the raw text of the value
func (v Value) String() string { return v.raw }

// Equal reports whether v holds the same variant and content as o.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.num == o.num
	}
	return v.raw == o.raw
}

// Record maps field names to values. When a name repeats within a line
// the last occurrence wins.
type Record map[string]Value

// Get returns the named field
func (r Record) Get(name string) (Value, bool) {
	v, ok := r[name]
	return v, ok
}

// Require returns the named field or a *MissingFieldError.
func (r Record) Require(name string) (Value, error) {
	v, ok := r[name]
	if !ok {
		return Value{}, &MissingFieldError{Field: name}
	}
	return v, nil
}

// Text returns the raw text of a required field.
func (r Record) Text(name string) (string, error) {
	v, err := r.Require(name)
	if err != nil {
		return "", err
	}
	return v.Raw(), nil
}

// Float returns a required numeric field.
func (r Record) Float(name string) (float64, error) {
	v, err := r.Require(name)
	if err != nil {
		return 0, err
	}
	if !v.IsNumber() {
		return 0, &NotNumericError{Field: name, Raw: v.raw}
	}
	return v.num, nil
}
