// Package parser turns raw log file content into typed entries according to a
// loaded schema: delimiter-based tokenization into entry blocks, positional
// field splitting, and per-category type decoding.
package parser

import "strconv"

// Kind tags the variants of a FieldValue.
type Kind int

const (
	// KindAbsent marks a field that is missing or failed numeric coercion.
	KindAbsent Kind = iota
	// KindString is a plain scalar string.
	KindString
	// KindNumber is a numeric scalar.
	KindNumber
	// KindMapping is ordered key-value content decoded from a container.
	KindMapping
	// KindSequence is an ordered element list decoded from a container.
	KindSequence
)

// Pair is one key-value entry of a mapping field.
type Pair struct {
	Key   string
	Value string
}

// FieldValue is the tagged union a decoded field resolves to. Consumers
// switch on Kind; there is no dynamic typing anywhere downstream.
type FieldValue struct {
	kind    Kind
	str     string
	num     float64
	integer bool
	pairs   []Pair
	items   []string
}

// Absent is the FieldValue for a missing or uncoercible field.
func Absent() FieldValue { return FieldValue{kind: KindAbsent} }

// StringValue wraps a scalar string.
func StringValue(s string) FieldValue { return FieldValue{kind: KindString, str: s} }

// IntValue wraps an integer-parsed number.
func IntValue(n int64) FieldValue {
	return FieldValue{kind: KindNumber, num: float64(n), integer: true}
}

// FloatValue wraps a float-parsed number.
func FloatValue(f float64) FieldValue { return FieldValue{kind: KindNumber, num: f} }

// MappingValue wraps ordered key-value pairs.
func MappingValue(pairs []Pair) FieldValue { return FieldValue{kind: KindMapping, pairs: pairs} }

// SequenceValue wraps an ordered element list.
func SequenceValue(items []string) FieldValue { return FieldValue{kind: KindSequence, items: items} }

// Kind returns the variant tag.
func (v FieldValue) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the Absent variant.
func (v FieldValue) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the scalar string for KindString values.
func (v FieldValue) Str() string { return v.str }

// Num returns the numeric value for KindNumber values.
func (v FieldValue) Num() float64 { return v.num }

// IsInteger reports whether a KindNumber value came from an integer parse.
func (v FieldValue) IsInteger() bool { return v.integer }

// Mapping returns the ordered pairs for KindMapping values.
func (v FieldValue) Mapping() []Pair { return v.pairs }

// Sequence returns the elements for KindSequence values.
func (v FieldValue) Sequence() []string { return v.items }

// String renders the canonical text form used for matching and export:
// scalars verbatim, mappings as "k=v;k=v", sequences comma-joined, absent as
// the empty string. The form is lossless with respect to the default
// delimiters and round-trips through the container decoder.
func (v FieldValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.integer {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindMapping:
		out := ""
		for i, p := range v.pairs {
			if i > 0 {
				out += ";"
			}
			out += p.Key + "=" + p.Value
		}
		return out
	case KindSequence:
		out := ""
		for i, item := range v.items {
			if i > 0 {
				out += ","
			}
			out += item
		}
		return out
	default:
		return ""
	}
}

// LogEntry is one decoded log record.
type LogEntry struct {
	// Raw is the trimmed entry text as tokenized from the source.
	Raw string

	// LineNumber is 1-based and sequential within the entry's source, in
	// scan order. In delimiter-pair mode it counts matches, not original
	// file lines.
	LineNumber int

	// Fields maps category name to decoded value. Categories beyond the
	// split field count are simply not present.
	Fields map[string]FieldValue

	// Multiline is true when the entry body spans newlines.
	Multiline bool

	// Source identifies the file the entry came from, if any.
	Source string
}

// Field returns the decoded value for a category name. Missing categories
// yield the Absent variant.
func (e *LogEntry) Field(name string) FieldValue {
	if v, ok := e.Fields[name]; ok {
		return v
	}
	return Absent()
}

// RawEntry is an entry block produced by tokenization, before field decoding.
type RawEntry struct {
	Text      string
	Multiline bool
}
