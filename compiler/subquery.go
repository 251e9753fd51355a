package compiler

import (
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/predicate"
	"github.com/nicia-ai/typegraph/valuetype"
)

// GetSubqueryColumnCount returns the selective-field count if any, else
// the explicit projection field count (§4.10).
func GetSubqueryColumnCount(sub predicate.Subquery) int {
	switch q := sub.(type) {
	case *ast.QueryAst:
		if len(q.SelectiveFields) > 0 {
			return len(q.SelectiveFields)
		}
		return len(q.Projection.Fields)
	case *ast.SetOperation:
		return GetSubqueryColumnCount(q.Left)
	default:
		return 0
	}
}

// GetSingleSubqueryColumnValueType returns the normalized ValueType of a
// subquery's single projected column, mapping aggregate functions per
// §3's invariant, or valuetype.Unknown when unresolved (a selective-field
// projection, a multi-column projection, or an unrecognized shape) (§4.10).
func GetSingleSubqueryColumnValueType(sub predicate.Subquery) valuetype.ValueType {
	switch q := sub.(type) {
	case *ast.QueryAst:
		if len(q.SelectiveFields) > 0 {
			return valuetype.Unknown
		}
		if len(q.Projection.Fields) != 1 {
			return valuetype.Unknown
		}
		f := q.Projection.Fields[0]
		switch {
		case f.Aggregate != nil:
			return valuetype.AggregateResultType(string(f.Aggregate.Func), f.Aggregate.Field.ValueType)
		case f.Field != nil:
			return f.Field.ValueType
		default:
			return valuetype.Unknown
		}
	case *ast.SetOperation:
		return GetSingleSubqueryColumnValueType(q.Left)
	default:
		return valuetype.Unknown
	}
}

// IsInSubqueryTypeCompatible reports whether an IN-subquery comparison
// between a field of type a and a subquery column of type b is allowed:
// true whenever either side is unresolved, or both are equal (§4.10).
func IsInSubqueryTypeCompatible(a, b valuetype.ValueType) bool {
	if a == valuetype.Unknown || b == valuetype.Unknown {
		return true
	}
	return a == b
}

// IsUnsupportedInSubqueryValueType reports whether a single-column
// projection of this type can never back an IN/NOT IN comparison (§4.10).
func IsUnsupportedInSubqueryValueType(t valuetype.ValueType) bool {
	return valuetype.UnsupportedInSubquery(t)
}
