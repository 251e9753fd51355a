package ast

import "github.com/google/uuid"

// NewGraphID returns a freshly generated opaque graph identifier for a
// QueryAst that omits one. Graph IDs are otherwise caller-supplied
// (they name a tenant's property graph); this only covers the
// construction-helper and test-fixture path.
func NewGraphID() string {
	return uuid.NewString()
}

// NewQueryAst returns a standard-mode QueryAst anchored at start. If
// graphID is empty, one is generated via NewGraphID so every
// constructed AST carries an identifier even when a caller only cares
// about a single-tenant test fixture.
func NewQueryAst(graphID string, start StartSpec) *QueryAst {
	if graphID == "" {
		graphID = NewGraphID()
	}
	return &QueryAst{GraphID: graphID, Start: start}
}
