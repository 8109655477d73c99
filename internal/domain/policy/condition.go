// Package policy evaluates permission conditions against request attributes.
package policy

import (
	"fmt"
	"reflect"
	"strings"

	"petwelfare/internal/domain/entity"
)

// Attributes is the document conditions are evaluated against, e.g. the
// requesting user and the resource being accessed.
type Attributes map[string]any

// Lookup resolves a dotted path such as "resource.owner.id". Missing segments yield nil, false.
func Lookup(attrs map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = attrs
	for _, segment := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Evaluate reports whether every condition holds for attrs. An empty list always holds.
func Evaluate(conditions []entity.Condition, attrs map[string]any) bool {
	for _, cond := range conditions {
		if !EvaluateOne(cond, attrs) {
			return false
		}
	}

	return true
}

// EvaluateOne applies a single condition. Unknown operators never match.
func EvaluateOne(cond entity.Condition, attrs map[string]any) bool {
	actual, found := Lookup(attrs, cond.Field)

	switch cond.Operator {
	case entity.OpExists:
		return found && actual != nil
	case entity.OpEquals:
		return equal(actual, cond.Value)
	case entity.OpNotEquals:
		return !equal(actual, cond.Value)
	case entity.OpContains:
		return contains(actual, cond.Value)
	case entity.OpNotContains:
		return !contains(actual, cond.Value)
	case entity.OpGreaterThan:
		a, okA := toFloat(actual)
		b, okB := toFloat(cond.Value)

		return okA && okB && a > b
	case entity.OpLessThan:
		a, okA := toFloat(actual)
		b, okB := toFloat(cond.Value)

		return okA && okB && a < b
	case entity.OpIn:
		return memberOf(actual, cond.Value)
	case entity.OpNotIn:
		return !memberOf(actual, cond.Value)
	default:
		return false
	}
}

// IsKnownOperator reports whether op is supported by EvaluateOne.
func IsKnownOperator(op entity.ConditionOperator) bool {
	switch op {
	case entity.OpEquals, entity.OpNotEquals, entity.OpContains, entity.OpNotContains,
		entity.OpGreaterThan, entity.OpLessThan, entity.OpIn, entity.OpNotIn, entity.OpExists:
		return true
	}

	return false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Attributes:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}

		return out, true
	}

	return nil, false
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	if sa, ok := a.(fmt.Stringer); ok {
		a = sa.String()
	}
	if sb, ok := b.(fmt.Stringer); ok {
		b = sb.String()
	}

	return reflect.DeepEqual(a, b)
}

// contains is substring match for strings and element match for slices.
func contains(haystack, needle any) bool {
	if s, ok := haystack.(string); ok {
		n, ok := needle.(string)

		return ok && strings.Contains(s, n)
	}

	items, ok := toSlice(haystack)
	if !ok {
		return false
	}
	for _, item := range items {
		if equal(item, needle) {
			return true
		}
	}

	return false
}

func memberOf(value, list any) bool {
	items, ok := toSlice(list)
	if !ok {
		return false
	}
	for _, item := range items {
		if equal(value, item) {
			return true
		}
	}

	return false
}

func toSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
