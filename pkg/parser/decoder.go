package parser

import (
	"strconv"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// DecodeField converts one positional field string into a typed value
// according to its category. Decoding is total: numeric parse failure yields
// the Absent variant, never an error.
func DecodeField(text string, cat config.Category, delims config.Delimiters) FieldValue {
	switch cat.Type {
	case config.FieldTypeDateTime:
		// Timestamps stay opaque, lexicographically comparable strings.
		return StringValue(text)
	case config.FieldTypeNumber:
		return decodeNumber(text)
	default:
		return DecodeContainer(text, delims)
	}
}

func decodeNumber(text string) FieldValue {
	if !strings.Contains(text, ".") {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return IntValue(n)
		}
		return Absent()
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return FloatValue(f)
	}
	return Absent()
}

// DecodeContainer decodes a string field that may carry structured content.
//
// A value wrapped in the container delimiters is unwrapped and trimmed first.
// The interior is then classified: key-value content becomes a Mapping, an
// element list becomes a Sequence, anything else stays a plain Scalar.
// Key-value detection is checked before array detection, so an interior
// containing both separators is always a mapping.
func DecodeContainer(text string, delims config.Delimiters) FieldValue {
	if text == "" {
		return StringValue(text)
	}

	interior := text
	if delims.ContainerStart != "" && delims.ContainerEnd != "" &&
		strings.HasPrefix(text, delims.ContainerStart) &&
		strings.HasSuffix(text, delims.ContainerEnd) &&
		len(text) >= len(delims.ContainerStart)+len(delims.ContainerEnd) {
		interior = strings.TrimSpace(text[len(delims.ContainerStart) : len(text)-len(delims.ContainerEnd)])
	}

	if delims.KeyValue != "" && strings.Contains(interior, delims.KeyValue) {
		return decodeMapping(interior, delims)
	}
	if delims.ArrayElement != "" && strings.Contains(interior, delims.ArrayElement) {
		return decodeSequence(interior, delims)
	}
	return StringValue(interior)
}

func decodeMapping(interior string, delims config.Delimiters) FieldValue {
	var pieces []string
	if delims.KeyValuePairs == "" {
		pieces = []string{interior}
	} else {
		pieces = strings.Split(interior, delims.KeyValuePairs)
	}

	pairs := make([]Pair, 0, len(pieces))
	for _, piece := range pieces {
		key, value, found := strings.Cut(piece, delims.KeyValue)
		if !found {
			// Pieces without the separator are silently dropped.
			continue
		}
		pairs = append(pairs, Pair{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return MappingValue(pairs)
}

func decodeSequence(interior string, delims config.Delimiters) FieldValue {
	split := strings.Split(interior, delims.ArrayElement)
	items := make([]string, 0, len(split))
	for _, item := range split {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return SequenceValue(items)
}

// DecodeEntry builds a LogEntry from one tokenized block. The Nth split field
// maps to the Nth category in sorted order; trailing categories with no field
// text are left out of Fields, extra field texts are discarded.
func DecodeEntry(raw RawEntry, lineNumber int, cfg *config.Config) *LogEntry {
	entry := &LogEntry{
		Raw:        raw.Text,
		LineNumber: lineNumber,
		Fields:     make(map[string]FieldValue, len(cfg.Categories)),
		Multiline:  raw.Multiline,
	}

	parts := SplitFields(raw.Text, cfg.Delimiters.CategorySeparator)
	for i, cat := range cfg.Categories {
		if i >= len(parts) {
			break
		}
		entry.Fields[cat.Name] = DecodeField(parts[i], cat, cfg.Delimiters)
	}
	return entry
}
