package compiler

import (
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/predicate"
	"github.com/nicia-ai/typegraph/schema"
)

// State is the full, read-only input a compilation threads through the
// semantic passes. Each compilation constructs its own State; nothing in
// this package mutates it or any of its fields in place (§5).
type State struct {
	Query   *ast.QueryAst
	Schema  *schema.Introspector
	Dialect dialect.Adapter

	// VectorPredicate is populated by the vector-predicate pass.
	VectorPredicate *predicate.VectorSimilarity
	// RecursiveTraversal is populated by the recursive-traversal
	// selection pass when the query is in recursive mode.
	RecursiveTraversal *ast.Traversal
	// TemporalFilter is populated by the temporal pass: a closure
	// producing a bitemporal filter fragment for one table alias, all
	// sharing a single reference timestamp (§4.8).
	TemporalFilter func(tableAlias string) dialect.Expr
	// EffectiveLimit is populated by the limit-resolution pass.
	EffectiveLimit *int
}

// RunSemanticPasses runs the vector-predicate, recursive-traversal,
// temporal, and limit-resolution passes in order and returns the
// populated State (§4.8).
func RunSemanticPasses(initial State) (State, error) {
	return Run(initial,
		step(vectorPredicatePass),
		step(recursiveTraversalPass),
		step(temporalPass),
		step(limitResolutionPass),
	)
}
