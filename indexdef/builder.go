// Package indexdef implements the index-definition subsystem (§4.6):
// fluent builders that normalize, validate, name, and compile node/edge
// index definitions against a schema introspector and a dialect adapter.
package indexdef

import (
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/schema"
)

// NodeBuilder accumulates a node index definition. Its chaining methods
// mutate and return the same builder, mirroring the shared-descriptor
// behavior of the teacher's index.Fields(...) builder: separate variables
// holding the result of an earlier chain link still see later mutations.
type NodeBuilder struct {
	kind     string
	fields   []string
	covering []string
	unique   bool
	scope    schema.IndexScope
	where    ast.IndexWhereExpression
	name     string
}

// Fields starts a node index definition over one or more field paths. A
// field path is a top-level schema field name, optionally followed by
// "/"-joined pointer segments addressing a nested location
// ("address/city").
func Fields(fields ...string) *NodeBuilder {
	return &NodeBuilder{fields: fields}
}

// Unique marks the index as enforcing uniqueness over its key fields.
func (b *NodeBuilder) Unique() *NodeBuilder {
	b.unique = true
	return b
}

// Scope sets the leading system-column scope the index keys on.
// ScopeGraphAndKind is assumed if never called.
func (b *NodeBuilder) Scope(scope schema.IndexScope) *NodeBuilder {
	b.scope = scope
	return b
}

// CoveringFields adds fields carried in the index for covering-index reads
// without being part of the key itself.
func (b *NodeBuilder) CoveringFields(fields ...string) *NodeBuilder {
	b.covering = append(b.covering, fields...)
	return b
}

// Where attaches a partial-index predicate, restricted by construction to
// this kind's own props fields and recognized system columns (§3).
func (b *NodeBuilder) Where(expr ast.IndexWhereExpression) *NodeBuilder {
	b.where = expr
	return b
}

// Name overrides the default derived index name.
func (b *NodeBuilder) Name(name string) *NodeBuilder {
	b.name = name
	return b
}

// EdgeBuilder is NodeBuilder plus a traversal Direction, since edge indexes
// may additionally key on the from_id/to_id endpoint column (§6).
type EdgeBuilder struct {
	kind      string
	fields    []string
	covering  []string
	unique    bool
	scope     schema.IndexScope
	direction schema.EdgeDirection
	where     ast.IndexWhereExpression
	name      string
}

// EdgeFields starts an edge index definition.
func EdgeFields(fields ...string) *EdgeBuilder {
	return &EdgeBuilder{direction: schema.DirectionNone, fields: fields}
}

func (b *EdgeBuilder) Unique() *EdgeBuilder {
	b.unique = true
	return b
}

func (b *EdgeBuilder) Scope(scope schema.IndexScope) *EdgeBuilder {
	b.scope = scope
	return b
}

func (b *EdgeBuilder) Direction(direction schema.EdgeDirection) *EdgeBuilder {
	b.direction = direction
	return b
}

func (b *EdgeBuilder) CoveringFields(fields ...string) *EdgeBuilder {
	b.covering = append(b.covering, fields...)
	return b
}

func (b *EdgeBuilder) Where(expr ast.IndexWhereExpression) *EdgeBuilder {
	b.where = expr
	return b
}

func (b *EdgeBuilder) Name(name string) *EdgeBuilder {
	b.name = name
	return b
}
