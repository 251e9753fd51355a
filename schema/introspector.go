package schema

import (
	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/jsonpointer"
)

// Introspector exposes FieldTypeInfo lookups over the universe of node and
// edge kinds visible to one compilation (§3: "constructed per compilation,
// from the universe of kinds visible to that operation").
type Introspector struct {
	nodes map[string]map[string]*FieldTypeInfo
	edges map[string]map[string]*FieldTypeInfo
}

// New builds an Introspector over the given kind -> top-field -> type maps.
// Callers must freeze these maps before passing them in; the introspector
// never mutates or copies them (§5).
func New(nodes, edges map[string]map[string]*FieldTypeInfo) *Introspector {
	return &Introspector{nodes: nodes, edges: edges}
}

// GetFieldTypeInfo returns the top-level field's FieldTypeInfo for a node
// kind, or nil if the kind or field is unknown.
func (in *Introspector) GetFieldTypeInfo(kind, topField string) *FieldTypeInfo {
	fields, ok := in.nodes[kind]
	if !ok {
		return nil
	}
	return fields[topField]
}

// GetEdgeFieldTypeInfo returns the top-level field's FieldTypeInfo for an
// edge kind, or nil if the kind or field is unknown.
func (in *Introspector) GetEdgeFieldTypeInfo(kind, topField string) *FieldTypeInfo {
	fields, ok := in.edges[kind]
	if !ok {
		return nil
	}
	return fields[topField]
}

// ResolveFieldTypeInfoAtJsonPointer recursively descends rootInfo along
// ptr, returning the innermost FieldTypeInfo, or nil if any segment is
// unknown.
func (in *Introspector) ResolveFieldTypeInfoAtJsonPointer(rootInfo *FieldTypeInfo, ptr jsonpointer.Pointer) *FieldTypeInfo {
	if rootInfo == nil {
		return nil
	}
	node, ok := jsonpointer.Resolve(rootInfo, ptr)
	if !ok {
		return nil
	}
	fti, ok := node.(*FieldTypeInfo)
	if !ok {
		return nil
	}
	return fti
}

// ResolveNodeField resolves a top field name plus a relative pointer
// against a node kind in one call, the shape the index-definition and
// predicate-builder normalization steps actually need.
func (in *Introspector) ResolveNodeField(kind, topField string, rel jsonpointer.Pointer) (*FieldTypeInfo, error) {
	root := in.GetFieldTypeInfo(kind, topField)
	if root == nil {
		return nil, typegraph.NewSchemaResolutionError(kind, topField, "", "unknown field")
	}
	if rel.IsRoot() {
		return root, nil
	}
	fti := in.ResolveFieldTypeInfoAtJsonPointer(root, rel)
	if fti == nil {
		return nil, typegraph.NewSchemaResolutionError(kind, "", rel.String(), "unresolvable pointer segment")
	}
	return fti, nil
}

// ResolveEdgeField is ResolveNodeField for edge kinds.
func (in *Introspector) ResolveEdgeField(kind, topField string, rel jsonpointer.Pointer) (*FieldTypeInfo, error) {
	root := in.GetEdgeFieldTypeInfo(kind, topField)
	if root == nil {
		return nil, typegraph.NewSchemaResolutionError(kind, topField, "", "unknown edge field")
	}
	if rel.IsRoot() {
		return root, nil
	}
	fti := in.ResolveFieldTypeInfoAtJsonPointer(root, rel)
	if fti == nil {
		return nil, typegraph.NewSchemaResolutionError(kind, "", rel.String(), "unresolvable pointer segment")
	}
	return fti, nil
}
