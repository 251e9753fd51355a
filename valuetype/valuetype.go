// Package valuetype defines the closed tag used throughout TypeGraph to
// classify schema fields, literal values, and subquery projections.
package valuetype

// ValueType is a closed sum of the value classifications the compiler
// reasons about. It never grows at runtime: every switch over ValueType in
// this module is exhaustive.
type ValueType string

const (
	String    ValueType = "string"
	Number    ValueType = "number"
	Boolean   ValueType = "boolean"
	Date      ValueType = "date"
	Array     ValueType = "array"
	Object    ValueType = "object"
	Embedding ValueType = "embedding"
	Unknown   ValueType = "unknown"
)

// Valid reports whether t is one of the declared constants.
func (t ValueType) Valid() bool {
	switch t {
	case String, Number, Boolean, Date, Array, Object, Embedding, Unknown:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ValueType) String() string {
	if t == "" {
		return string(Unknown)
	}
	return string(t)
}

// Unindexable reports whether a key or covering field of this ValueType can
// never back a props-key index; those require a dedicated vector or
// GIN/JSON strategy instead (§4.6 step 3).
func Unindexable(t ValueType) bool {
	switch t {
	case Embedding, Array, Object:
		return true
	default:
		return false
	}
}

// UnsupportedInSubquery reports whether a single-column subquery projecting
// this type can never be compared with IN/NOT IN (§4.10).
func UnsupportedInSubquery(t ValueType) bool {
	switch t {
	case Array, Object, Embedding:
		return true
	default:
		return false
	}
}

// AggregateResultType maps an aggregate function name to the ValueType its
// result carries, per §3's invariant on IN-subquery compatibility:
// count|sum|avg -> number; min|max -> the aggregated field's own type.
func AggregateResultType(fn string, fieldType ValueType) ValueType {
	switch fn {
	case "count", "sum", "avg":
		return Number
	case "min", "max":
		return fieldType
	default:
		return Unknown
	}
}
