// Package classify resolves display colors for decoded field values against
// the declarative color rules of a schema.
package classify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// RGBToHex converts an "r,g,b" triplet string to "#rrggbb" with lowercase hex
// digits. Malformed input (wrong component count, non-numeric parts) yields
// "#000000". Out-of-range components are not clamped and can produce
// malformed hex; the schema editor is expected to keep components in range.
func RGBToHex(rgb string) string {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return "#000000"
	}

	var channels [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "#000000"
		}
		channels[i] = n
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
}

// ResolveColor returns the hex color the category's rule assigns to a value,
// or false when the category has no rule or nothing matches. Rule entries are
// evaluated in declaration order; the first match wins.
func ResolveColor(cat config.Category, value parser.FieldValue) (string, bool) {
	if !cat.HasColorRule() {
		return "", false
	}

	switch cat.ColourType {
	case config.ColorWholeLine, config.ColorLineNumber:
		return matchLiteral(cat.ColourMap, value.String())
	case config.ColorSpecificValue:
		if value.Kind() == parser.KindNumber {
			return matchRange(cat.ColourMap, value.Num())
		}
		return matchLiteral(cat.ColourMap, value.String())
	default:
		return "", false
	}
}

func matchLiteral(rules config.ColorMap, value string) (string, bool) {
	for _, rule := range rules {
		if literalSetContains(rule.Match, value) {
			return RGBToHex(rule.RGB), true
		}
	}
	return "", false
}

// literalSetContains checks a comma-separated candidate set for an exact
// string match.
func literalSetContains(matchSpec, value string) bool {
	for _, candidate := range strings.Split(matchSpec, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if candidate == value {
			return true
		}
	}
	return false
}

func matchRange(rules config.ColorMap, value float64) (string, bool) {
	for _, rule := range rules {
		if rangeSpecMatches(rule.Match, value) {
			return RGBToHex(rule.RGB), true
		}
	}
	return "", false
}

// rangeSpecMatches evaluates a spec like "1-10, 20-30, 50" against a numeric
// value. Range tokens are inclusive with order-independent bounds; bare
// tokens match on equality. Malformed tokens are skipped, never an error.
func rangeSpecMatches(rangeSpec string, value float64) bool {
	for _, token := range strings.Split(rangeSpec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			bounds := strings.Split(token, "-")
			if len(bounds) != 2 {
				continue
			}
			low, errLow := strconv.ParseFloat(strings.TrimSpace(bounds[0]), 64)
			high, errHigh := strconv.ParseFloat(strings.TrimSpace(bounds[1]), 64)
			if errLow != nil || errHigh != nil {
				continue
			}
			if high < low {
				low, high = high, low
			}
			if low <= value && value <= high {
				return true
			}
			continue
		}

		if n, err := strconv.ParseFloat(token, 64); err == nil && n == value {
			return true
		}
	}
	return false
}
