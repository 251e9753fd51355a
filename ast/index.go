package ast

import (
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/predicate"
	"github.com/nicia-ai/typegraph/schema"
	"github.com/nicia-ai/typegraph/valuetype"
)

// IndexWhereExpression mirrors a predicate expression but is restricted,
// by construction in the indexdef builder rather than by this type, to
// referencing a single kind's props fields and recognized system columns
// (§3: "It never references other tables").
type IndexWhereExpression = predicate.P

// NodeIndex is a normalized, validated node index definition (§3, §4.6).
type NodeIndex struct {
	Kind                    string
	KindName                string
	Fields                  []jsonpointer.Pointer
	FieldValueTypes         []valuetype.ValueType
	CoveringFields          []jsonpointer.Pointer
	CoveringFieldValueTypes []valuetype.ValueType
	Unique                  bool
	Scope                   schema.IndexScope
	Where                   IndexWhereExpression
	Name                    string
}

// EdgeIndex is NodeIndex with an additional Direction, since edge indexes
// may key on the `from_id`/`to_id` endpoint column in addition to the
// shared scope columns (§6).
type EdgeIndex struct {
	Kind                    string
	KindName                string
	Fields                  []jsonpointer.Pointer
	FieldValueTypes         []valuetype.ValueType
	CoveringFields          []jsonpointer.Pointer
	CoveringFieldValueTypes []valuetype.ValueType
	Unique                  bool
	Scope                   schema.IndexScope
	Direction               schema.EdgeDirection
	Where                   IndexWhereExpression
	Name                    string
}
