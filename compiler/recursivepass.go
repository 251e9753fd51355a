package compiler

import (
	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/ast"
)

// recursiveTraversalPassExecute implements §4.8's recursive-traversal
// selection pass: exactly one traversal may carry variableLength, and when
// one does, it must be the query's only traversal.
func recursiveTraversalPassExecute(state State) (*ast.Traversal, error) {
	var recursive *ast.Traversal
	count := 0
	for i := range state.Query.Traversals {
		if state.Query.Traversals[i].VariableLength != nil {
			count++
			recursive = &state.Query.Traversals[i]
		}
	}
	if count == 0 {
		return nil, nil
	}
	if count > 1 {
		return nil, typegraph.NewCompilerInvariantError("recursive-traversal selection", "only one traversal may carry variableLength")
	}
	if len(state.Query.Traversals) > 1 {
		return nil, typegraph.NewCompilerInvariantError("recursive-traversal selection", "recursive mode allows only one traversal total")
	}
	return recursive, nil
}

var recursiveTraversalPass = Pass[State, *ast.Traversal]{
	Name:    "recursive_traversal_selection",
	Execute: recursiveTraversalPassExecute,
	Update: func(state State, output *ast.Traversal) State {
		state.RecursiveTraversal = output
		return state
	},
}
