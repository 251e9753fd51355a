package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/compiler"
	"github.com/nicia-ai/typegraph/predicate"
	"github.com/nicia-ai/typegraph/valuetype"
)

func TestGetSubqueryColumnCountPrefersSelectiveFields(t *testing.T) {
	q := &ast.QueryAst{
		SelectiveFields: []string{"id", "name"},
		Projection:      ast.Projection{Fields: []ast.ProjectionField{{OutputName: "x"}}},
	}
	assert.Equal(t, 2, compiler.GetSubqueryColumnCount(q))
}

func TestGetSubqueryColumnCountFallsBackToProjection(t *testing.T) {
	q := &ast.QueryAst{
		Projection: ast.Projection{Fields: []ast.ProjectionField{{OutputName: "x"}, {OutputName: "y"}}},
	}
	assert.Equal(t, 2, compiler.GetSubqueryColumnCount(q))
}

func TestGetSingleSubqueryColumnValueTypeAggregate(t *testing.T) {
	q := &ast.QueryAst{
		Projection: ast.Projection{Fields: []ast.ProjectionField{
			{OutputName: "c", Aggregate: &predicate.AggregateRef{Func: predicate.AggCount, Field: predicate.FieldRef{ValueType: valuetype.String}}},
		}},
	}
	assert.Equal(t, valuetype.Number, compiler.GetSingleSubqueryColumnValueType(q))
}

func TestGetSingleSubqueryColumnValueTypePlainField(t *testing.T) {
	ref := predicate.FieldRef{ValueType: valuetype.Date}
	q := &ast.QueryAst{
		Projection: ast.Projection{Fields: []ast.ProjectionField{{OutputName: "d", Field: &ref}}},
	}
	assert.Equal(t, valuetype.Date, compiler.GetSingleSubqueryColumnValueType(q))
}

func TestGetSingleSubqueryColumnValueTypeUnresolvedForMultiColumn(t *testing.T) {
	q := &ast.QueryAst{
		Projection: ast.Projection{Fields: []ast.ProjectionField{{OutputName: "a"}, {OutputName: "b"}}},
	}
	assert.Equal(t, valuetype.Unknown, compiler.GetSingleSubqueryColumnValueType(q))
}

func TestIsInSubqueryTypeCompatible(t *testing.T) {
	assert.True(t, compiler.IsInSubqueryTypeCompatible(valuetype.String, valuetype.String))
	assert.False(t, compiler.IsInSubqueryTypeCompatible(valuetype.String, valuetype.Number))
	assert.True(t, compiler.IsInSubqueryTypeCompatible(valuetype.Unknown, valuetype.Number))
}

func TestIsUnsupportedInSubqueryValueType(t *testing.T) {
	assert.True(t, compiler.IsUnsupportedInSubqueryValueType(valuetype.Array))
	assert.True(t, compiler.IsUnsupportedInSubqueryValueType(valuetype.Object))
	assert.True(t, compiler.IsUnsupportedInSubqueryValueType(valuetype.Embedding))
	assert.False(t, compiler.IsUnsupportedInSubqueryValueType(valuetype.String))
}
