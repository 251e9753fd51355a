package compiler

import (
	"fmt"
	"time"

	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/dialect"
)

// temporalFilter is the closure type §4.8's temporal pass produces: a
// bitemporal filter fragment for one table alias, all aliases within a
// query sharing a single reference timestamp.
type temporalFilter = func(tableAlias string) dialect.Expr

func temporalPassExecute(state State) (temporalFilter, error) {
	mode := state.Query.TemporalMode
	switch mode.Mode {
	case ast.TemporalAllTime:
		return func(string) dialect.Expr { return dialect.Expr{} }, nil
	case ast.TemporalAsOf:
		if mode.AsOf == nil {
			return nil, typegraph.NewCompilerInvariantError("temporal pass", "asOf mode requires an AsOf timestamp")
		}
		ts := mode.AsOf.UTC().Format(time.RFC3339Nano)
		return func(alias string) dialect.Expr {
			return dialect.Expr{
				SQL:  fmt.Sprintf("%s.valid_from <= ? AND (%s.valid_to IS NULL OR %s.valid_to > ?)", alias, alias, alias),
				Args: []any{ts, ts},
			}
		}, nil
	case ast.TemporalCurrent, "":
		now := state.Dialect.CurrentTimestamp()
		return func(alias string) dialect.Expr {
			return dialect.Expr{
				SQL: fmt.Sprintf("%s.valid_from <= %s AND (%s.valid_to IS NULL OR %s.valid_to > %s)", alias, now, alias, alias, now),
			}
		}, nil
	default:
		return nil, typegraph.NewCompilerInvariantError("temporal pass", "unknown temporal mode "+string(mode.Mode))
	}
}

var temporalPass = Pass[State, temporalFilter]{
	Name:    "temporal",
	Execute: temporalPassExecute,
	Update: func(state State, output temporalFilter) State {
		state.TemporalFilter = output
		return state
	},
}
