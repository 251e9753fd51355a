package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicia-ai/typegraph/ast"
)

func TestQueryAstIsRecursive(t *testing.T) {
	plain := &ast.QueryAst{
		Start:      ast.StartSpec{Alias: "p", Kinds: []string{"Person"}},
		Traversals: []ast.Traversal{{EdgeAlias: "e", NodeAlias: "f"}},
	}
	assert.False(t, plain.IsRecursive())

	recursive := &ast.QueryAst{
		Start: ast.StartSpec{Alias: "p", Kinds: []string{"Person"}},
		Traversals: []ast.Traversal{{
			EdgeAlias:      "e",
			NodeAlias:      "f",
			VariableLength: &ast.VariableLength{MinDepth: 1, MaxDepth: 5, CyclePolicy: ast.CyclePrevent},
		}},
	}
	assert.True(t, recursive.IsRecursive())
}

func TestSetOperationNesting(t *testing.T) {
	var _ ast.Query = &ast.QueryAst{}
	var _ ast.Query = &ast.SetOperation{
		Operator: ast.Except,
		Left:     &ast.QueryAst{},
		Right:    &ast.QueryAst{},
	}
}
