package predicate

import (
	"fmt"
	"time"

	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/valuetype"
)

// CoerceLiteral applies §4.5's literal coercion rules to a raw value
// against an expected ValueType, returning UnsupportedLiteralError for
// anything the rules do not recognize. preferred, when non-empty,
// overrides a string value's target type (e.g. a caller passing an
// ISO-8601 string against a date field).
func CoerceLiteral(fieldName string, value any, want valuetype.ValueType, preferred valuetype.ValueType) (Literal, error) {
	target := want
	if preferred != "" {
		target = preferred
	}

	switch target {
	case valuetype.Date:
		return coerceDate(fieldName, value)
	case valuetype.String:
		if s, ok := value.(string); ok {
			return Literal{Value: s, ValueType: valuetype.String}, nil
		}
	case valuetype.Number:
		if n, ok := asFloat(value); ok {
			return Literal{Value: n, ValueType: valuetype.Number}, nil
		}
	case valuetype.Boolean:
		if b, ok := value.(bool); ok {
			return Literal{Value: b, ValueType: valuetype.Boolean}, nil
		}
	}

	return Literal{}, typegraph.NewUnsupportedLiteralError(fieldName, string(target), goTypeName(value))
}

// CoerceLiteralList coerces every element of values against want,
// returning at the first failure.
func CoerceLiteralList(fieldName string, values []any, want valuetype.ValueType) ([]Literal, error) {
	out := make([]Literal, len(values))
	for i, v := range values {
		lit, err := CoerceLiteral(fieldName, v, want, "")
		if err != nil {
			return nil, err
		}
		out[i] = lit
	}
	return out, nil
}

func coerceDate(fieldName string, value any) (Literal, error) {
	switch v := value.(type) {
	case time.Time:
		return Literal{Value: v.UTC().Format(time.RFC3339Nano), ValueType: valuetype.Date}, nil
	case string:
		if _, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return Literal{Value: v, ValueType: valuetype.Date}, nil
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return Literal{Value: v, ValueType: valuetype.Date}, nil
		}
		return Literal{}, typegraph.NewUnsupportedLiteralError(fieldName, "date", "string (not ISO-8601)")
	default:
		return Literal{}, typegraph.NewUnsupportedLiteralError(fieldName, "date", goTypeName(value))
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func goTypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
