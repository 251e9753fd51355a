// Package schema implements the schema introspector (§4.2) and the
// system-column tables the WHERE-builder and dialect adapters consult for
// recognized node/edge metadata columns (§6).
package schema

import (
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/valuetype"
)

// FieldTypeInfo records a schema field's value type plus, for arrays, its
// element classification, and, for objects (or arrays of objects), the
// nested field tree needed to keep descending a JSON pointer.
type FieldTypeInfo struct {
	// Type is the field's own classification.
	Type valuetype.ValueType

	// ElementType is populated when Type is Array; it classifies the
	// array's elements.
	ElementType valuetype.ValueType

	// Fields holds the nested property tree when Type is Object, or the
	// nested property tree of each element when Type is Array and
	// ElementType is Object.
	Fields map[string]*FieldTypeInfo
}

var _ jsonpointer.TypedNode = (*FieldTypeInfo)(nil)

// ValueType implements jsonpointer.TypedNode.
func (f *FieldTypeInfo) ValueType() valuetype.ValueType { return f.Type }

// Child implements jsonpointer.TypedNode: it descends one pointer segment,
// either into an object's named property or an array's element schema.
func (f *FieldTypeInfo) Child(segment string) (jsonpointer.TypedNode, bool) {
	switch f.Type {
	case valuetype.Object:
		child, ok := f.Fields[segment]
		if !ok {
			return nil, false
		}
		return child, true
	case valuetype.Array:
		if !isArrayIndexSegment(segment) {
			return nil, false
		}
		if f.ElementType == valuetype.Object {
			// Arrays of objects all share one element schema; any valid
			// index resolves to the same nested tree.
			return &FieldTypeInfo{Type: valuetype.Object, Fields: f.Fields}, true
		}
		return &FieldTypeInfo{Type: f.ElementType}, true
	default:
		return nil, false
	}
}

func isArrayIndexSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
