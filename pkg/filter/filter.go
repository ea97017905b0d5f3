package filter

import (
	"strconv"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// StructuralMode is the three-way display filter over raw entry text.
type StructuralMode int

const (
	// ShowAll keeps every entry.
	ShowAll StructuralMode = iota
	// OnlyStructured keeps entries whose raw text looks like JSON/XML.
	OnlyStructured
	// HideStructured drops entries whose raw text looks like JSON/XML.
	HideStructured
)

// Predicate is one per-category filter condition.
type Predicate struct {
	Category string
	Type     config.FieldType
	Op       Op

	// Value is the primary operand. An empty value makes the predicate a
	// no-op. Value2 is the second operand of between/not-between.
	Value  string
	Value2 string
}

// Criteria is the full filter state applied to a set of entries.
type Criteria struct {
	Structural StructuralMode
	Search     string
	Predicates []Predicate
}

// Empty reports whether the criteria would keep every entry.
func (c Criteria) Empty() bool {
	if c.Structural != ShowAll || strings.TrimSpace(c.Search) != "" {
		return false
	}
	for _, p := range c.Predicates {
		if strings.TrimSpace(p.Value) != "" {
			return false
		}
	}
	return true
}

// Apply narrows entries to those satisfying every active criterion. Pure
// function: input order is preserved, inputs are never modified, and a field
// value of unexpected shape for an operator excludes the entry rather than
// failing the evaluation.
func Apply(entries []*parser.LogEntry, c Criteria) []*parser.LogEntry {
	if c.Empty() {
		return entries
	}

	result := applyStructural(entries, c.Structural)
	result = applySearch(result, c.Search)
	for _, p := range c.Predicates {
		result = applyPredicate(result, p)
	}
	return result
}

// IsStructured reports whether raw text carries JSON/XML-like punctuation:
// a brace, a bracket, or an angle-bracket pair.
func IsStructured(raw string) bool {
	if strings.Contains(raw, "{") || strings.Contains(raw, "[") {
		return true
	}
	return strings.Contains(raw, "<") && strings.Contains(raw, ">")
}

func applyStructural(entries []*parser.LogEntry, mode StructuralMode) []*parser.LogEntry {
	if mode == ShowAll {
		return entries
	}

	var kept []*parser.LogEntry
	for _, e := range entries {
		structured := IsStructured(e.Raw)
		if (mode == OnlyStructured && structured) || (mode == HideStructured && !structured) {
			kept = append(kept, e)
		}
	}
	return kept
}

func applySearch(entries []*parser.LogEntry, term string) []*parser.LogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	var kept []*parser.LogEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Raw), term) {
			kept = append(kept, e)
		}
	}
	return kept
}

func applyPredicate(entries []*parser.LogEntry, p Predicate) []*parser.LogEntry {
	if strings.TrimSpace(p.Value) == "" {
		return entries
	}

	switch p.Type {
	case config.FieldTypeNumber:
		return filterNumber(entries, p)
	case config.FieldTypeDateTime:
		return filterDateTime(entries, p)
	default:
		return filterString(entries, p)
	}
}

func filterString(entries []*parser.LogEntry, p Predicate) []*parser.LogEntry {
	var kept []*parser.LogEntry
	for _, e := range entries {
		v, ok := e.Fields[p.Category]
		if !ok || v.IsAbsent() {
			continue
		}

		var match bool
		switch v.Kind() {
		case parser.KindMapping:
			match = matchMapping(v.Mapping(), p.Op, p.Value)
		case parser.KindSequence:
			match = matchSequence(v.Sequence(), p.Op, p.Value)
		default:
			match = matchScalar(v.String(), p.Op, p.Value)
		}
		if match {
			kept = append(kept, e)
		}
	}
	return kept
}

func matchScalar(fieldText string, op Op, value string) bool {
	field := strings.ToLower(fieldText)
	needle := strings.ToLower(value)

	switch op {
	case OpContains:
		return strings.Contains(field, needle)
	case OpEquals:
		return field == needle
	case OpNotContains:
		return !strings.Contains(field, needle)
	case OpNotEquals:
		return field != needle
	case OpStartsWith:
		return strings.HasPrefix(field, needle)
	case OpEndsWith:
		return strings.HasSuffix(field, needle)
	case OpContainsAny:
		for _, item := range splitOperandList(needle) {
			if strings.Contains(field, item) {
				return true
			}
		}
		return false
	case OpContainsAll:
		for _, item := range splitOperandList(needle) {
			if !strings.Contains(field, item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func matchMapping(pairs []parser.Pair, op Op, value string) bool {
	switch op {
	case OpHasKey:
		for _, pair := range pairs {
			if pair.Key == value {
				return true
			}
		}
		return false
	case OpKeyEquals:
		// Operand "key=value"; without '=' it degrades to a key-only check.
		key, want, hasValue := strings.Cut(value, "=")
		for _, pair := range pairs {
			if pair.Key == key && (!hasValue || want == "" || pair.Value == want) {
				return true
			}
		}
		return false
	case OpContains:
		return strings.Contains(strings.ToLower(flattenPairs(pairs)), strings.ToLower(value))
	case OpNotContains:
		return !strings.Contains(strings.ToLower(flattenPairs(pairs)), strings.ToLower(value))
	default:
		return false
	}
}

// flattenPairs renders a mapping as "k=v k=v" for substring operators.
func flattenPairs(pairs []parser.Pair) string {
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, pair.Key+"="+pair.Value)
	}
	return strings.Join(parts, " ")
}

func matchSequence(items []string, op Op, value string) bool {
	needle := strings.ToLower(value)

	anyElementContains := func(search string) bool {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), search) {
				return true
			}
		}
		return false
	}

	switch op {
	case OpContains:
		return anyElementContains(needle)
	case OpNotContains:
		return !anyElementContains(needle)
	case OpContainsAll:
		for _, search := range splitOperandList(needle) {
			if !anyElementContains(search) {
				return false
			}
		}
		return true
	case OpContainsAny:
		for _, search := range splitOperandList(needle) {
			if anyElementContains(search) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func filterNumber(entries []*parser.LogEntry, p Predicate) []*parser.LogEntry {
	num1, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err != nil {
		// Unparseable operand disables the predicate.
		return entries
	}

	var num2 *float64
	if v2 := strings.TrimSpace(p.Value2); v2 != "" {
		if n, err := strconv.ParseFloat(v2, 64); err == nil {
			num2 = &n
		}
	}

	var kept []*parser.LogEntry
	for _, e := range entries {
		v, ok := e.Fields[p.Category]
		if !ok || v.Kind() != parser.KindNumber {
			continue
		}
		if matchNumber(v.Num(), p.Op, num1, num2) {
			kept = append(kept, e)
		}
	}
	return kept
}

func matchNumber(field float64, op Op, num1 float64, num2 *float64) bool {
	switch op {
	case OpEquals:
		return field == num1
	case OpNotEquals:
		return field != num1
	case OpGreaterThan:
		return field > num1
	case OpLessThan:
		return field < num1
	case OpBetween:
		if num2 == nil {
			return false
		}
		low, high := orderBounds(num1, *num2)
		return low <= field && field <= high
	case OpNotBetween:
		if num2 == nil {
			return false
		}
		low, high := orderBounds(num1, *num2)
		return field < low || field > high
	default:
		return false
	}
}

func orderBounds(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}

func filterDateTime(entries []*parser.LogEntry, p Predicate) []*parser.LogEntry {
	var kept []*parser.LogEntry
	for _, e := range entries {
		v, ok := e.Fields[p.Category]
		if !ok || v.IsAbsent() {
			continue
		}
		if matchDateTime(v.String(), p.Op, p.Value, p.Value2) {
			kept = append(kept, e)
		}
	}
	return kept
}

// matchDateTime compares timestamps as opaque strings: before/after and the
// range operators use plain lexicographic ordering, not calendar semantics.
func matchDateTime(field string, op Op, value1, value2 string) bool {
	switch op {
	case OpContains:
		return strings.Contains(strings.ToLower(field), strings.ToLower(value1))
	case OpEquals:
		return strings.EqualFold(field, value1)
	case OpNotContains:
		return !strings.Contains(strings.ToLower(field), strings.ToLower(value1))
	case OpBefore:
		return field < value1
	case OpAfter:
		return field > value1
	case OpBetween:
		if value2 == "" {
			return false
		}
		low, high := orderStringBounds(value1, value2)
		return low <= field && field <= high
	case OpNotBetween:
		if value2 == "" {
			return false
		}
		low, high := orderStringBounds(value1, value2)
		return field < low || field > high
	default:
		return false
	}
}

func orderStringBounds(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// splitOperandList splits a comma-separated operand into trimmed, non-empty
// items for the contains-any / contains-all operators.
func splitOperandList(operand string) []string {
	split := strings.Split(operand, ",")
	items := make([]string, 0, len(split))
	for _, item := range split {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
