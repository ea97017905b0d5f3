// Package filter evaluates multi-predicate queries over decoded log entries.
package filter

import (
	"fmt"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// Op is a filter predicate operator.
type Op string

const (
	OpContains    Op = "contains"
	OpEquals      Op = "equals"
	OpNotContains Op = "not contains"
	OpNotEquals   Op = "not equals"
	OpStartsWith  Op = "starts with"
	OpEndsWith    Op = "ends with"
	OpContainsAny Op = "contains any"
	OpContainsAll Op = "contains all"
	OpHasKey      Op = "has key"
	OpKeyEquals   Op = "key equals"
	OpGreaterThan Op = "greater than"
	OpLessThan    Op = "less than"
	OpBetween     Op = "between"
	OpNotBetween  Op = "not between"
	OpBefore      Op = "before"
	OpAfter       Op = "after"
)

// OperatorsFor lists the operators available for a field type, first entry
// being the conventional default.
func OperatorsFor(t config.FieldType) []Op {
	switch t {
	case config.FieldTypeNumber:
		return []Op{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpBetween, OpNotBetween}
	case config.FieldTypeDateTime:
		return []Op{OpContains, OpEquals, OpNotContains, OpBefore, OpAfter, OpBetween, OpNotBetween}
	default:
		return []Op{OpContains, OpEquals, OpNotContains, OpNotEquals, OpStartsWith, OpEndsWith,
			OpContainsAny, OpContainsAll, OpHasKey, OpKeyEquals}
	}
}

// ParseOp resolves an operator name for a field type. Names accept either
// spaces or dashes ("not-contains" == "not contains").
func ParseOp(name string, t config.FieldType) (Op, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", " "))
	for _, op := range OperatorsFor(t) {
		if string(op) == normalized {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operator %q for %s fields", name, t)
}
