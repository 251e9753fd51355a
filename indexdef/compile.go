package indexdef

import (
	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/schema"
	"github.com/nicia-ai/typegraph/valuetype"
)

// propsColumn is the physical column every node/edge table carries its
// schema-defined fields in (§3, §6).
const propsColumn = "props"

// CompileNodeKeyExpressions renders idx's scope columns, key fields, and
// covering fields as dialect expressions in storage order: scope columns
// first, then key pointers, then covering pointers (§4.6, §6).
func CompileNodeKeyExpressions(idx *ast.NodeIndex, adapter dialect.Adapter) ([]dialect.Expr, error) {
	exprs := scopeColumnExprs(schema.NodeScopeColumns(idx.Scope), adapter)
	keyExprs, err := typedExtractAll(idx.Fields, idx.FieldValueTypes, adapter)
	if err != nil {
		return nil, err
	}
	coveringExprs, err := typedExtractAll(idx.CoveringFields, idx.CoveringFieldValueTypes, adapter)
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, keyExprs...)
	exprs = append(exprs, coveringExprs...)
	return exprs, nil
}

// CompileEdgeKeyExpressions is CompileNodeKeyExpressions for edge indexes,
// whose scope columns also fold in the endpoint column named by Direction.
func CompileEdgeKeyExpressions(idx *ast.EdgeIndex, adapter dialect.Adapter) ([]dialect.Expr, error) {
	exprs := scopeColumnExprs(schema.EdgeScopeColumns(idx.Scope, idx.Direction), adapter)
	keyExprs, err := typedExtractAll(idx.Fields, idx.FieldValueTypes, adapter)
	if err != nil {
		return nil, err
	}
	coveringExprs, err := typedExtractAll(idx.CoveringFields, idx.CoveringFieldValueTypes, adapter)
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, keyExprs...)
	exprs = append(exprs, coveringExprs...)
	return exprs, nil
}

func scopeColumnExprs(physical []string, adapter dialect.Adapter) []dialect.Expr {
	exprs := make([]dialect.Expr, len(physical))
	for i, col := range physical {
		exprs[i] = dialect.Expr{SQL: adapter.QuoteIdentifier(col)}
	}
	return exprs
}

func typedExtractAll(ptrs []jsonpointer.Pointer, types []valuetype.ValueType, adapter dialect.Adapter) ([]dialect.Expr, error) {
	exprs := make([]dialect.Expr, len(ptrs))
	for i, ptr := range ptrs {
		e, err := typedExtract(adapter, types[i], ptr)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

// typedExtract dispatches to the dialect's typed JSON extractor matching a
// field's ValueType. Reaching the default branch means a field of an
// unindexable type survived normalization — a prior-pass invariant
// violation (§9 open question: no silent fallback; this is always a
// CompilerInvariantError, never a best-effort JSON extraction).
func typedExtract(adapter dialect.Adapter, vt valuetype.ValueType, ptr jsonpointer.Pointer) (dialect.Expr, error) {
	switch vt {
	case valuetype.String:
		return adapter.JSONExtractText(propsColumn, ptr), nil
	case valuetype.Number:
		return adapter.JSONExtractNumber(propsColumn, ptr), nil
	case valuetype.Boolean:
		return adapter.JSONExtractBoolean(propsColumn, ptr), nil
	case valuetype.Date:
		return adapter.JSONExtractDate(propsColumn, ptr), nil
	default:
		return dialect.Expr{}, typegraph.NewCompilerInvariantError(
			"index key compilation",
			"value type "+vt.String()+" at "+ptr.String()+" cannot back a props-key index expression",
		)
	}
}
