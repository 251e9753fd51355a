// Package ast defines the query abstract syntax tree (§3): QueryAst,
// Traversal, SetOperation, and the index definition data shapes the
// indexdef package normalizes and compiles. Every type here is an
// immutable value once constructed; nothing in this package mutates an
// AST after it is built (§5).
package ast

import (
	"time"

	"github.com/nicia-ai/typegraph/predicate"
)

// StartSpec anchors a query at a set of node kinds.
type StartSpec struct {
	Alias             string
	Kinds             []string
	IncludeSubClasses bool
}

// PredicateBinding attaches a predicate expression to one alias in the
// query (the start alias or a traversal's edge/node alias).
type PredicateBinding struct {
	TargetAlias string
	TargetType  string
	Expression  predicate.P
}

// ProjectionField names one output column. Exactly one of Aggregate or
// Field is populated for a plain field projection versus an aggregate
// projection; both are nil for a bare CTE passthrough column.
type ProjectionField struct {
	OutputName string
	Source     string
	CTEAlias   string
	Field      *predicate.FieldRef
	Aggregate  *predicate.AggregateRef
}

// Projection is the query's output column list.
type Projection struct {
	Fields []ProjectionField
}

// TemporalModeKind is the closed set of temporal evaluation modes.
type TemporalModeKind string

const (
	TemporalCurrent TemporalModeKind = "current"
	TemporalAsOf    TemporalModeKind = "asOf"
	TemporalAllTime TemporalModeKind = "allTime"
)

// TemporalMode selects how bitemporal filtering applies to a query.
type TemporalMode struct {
	Mode TemporalModeKind
	AsOf *time.Time
}

// OrderDirection is the closed set of sort directions.
type OrderDirection string

const (
	Ascending  OrderDirection = "asc"
	Descending OrderDirection = "desc"
)

// OrderTerm is a single ORDER BY term.
type OrderTerm struct {
	Field     predicate.FieldRef
	Direction OrderDirection
}

// Query is satisfied by both *QueryAst and *SetOperation, the two
// composable query shapes a SetOperation's Left/Right may hold.
type Query interface {
	predicate.Subquery
	queryNode()
}

// QueryAst is the root of a standard or recursive query.
type QueryAst struct {
	GraphID         string
	Start           StartSpec
	Traversals      []Traversal
	Predicates      []PredicateBinding
	Projection      Projection
	TemporalMode    TemporalMode
	OrderBy         []OrderTerm
	Limit           *int
	Offset          *int
	GroupBy         []predicate.FieldRef
	Having          predicate.P
	SelectiveFields []string
}

func (*QueryAst) queryNode()       {}
func (*QueryAst) SubqueryMarker()  {}

// IsRecursive reports whether any traversal carries a VariableLength
// spec, the recursive-mode entry condition (§4.9). It does not count
// them; the recursive-traversal selection pass rejects more than one.
func (q *QueryAst) IsRecursive() bool {
	for _, tr := range q.Traversals {
		if tr.VariableLength != nil {
			return true
		}
	}
	return false
}
