package compiler

import (
	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/predicate"
)

// OperatorKind is the closed set of logical operator shapes §4.9 lowers a
// query into.
type OperatorKind string

const (
	OpScan            OperatorKind = "scan"
	OpFilter          OperatorKind = "filter"
	OpJoin            OperatorKind = "join"
	OpRecursiveExpand OperatorKind = "recursive_expand"
	OpVectorKNN       OperatorKind = "vector_knn"
	OpAggregate       OperatorKind = "aggregate"
	OpSort            OperatorKind = "sort"
	OpLimitOffset     OperatorKind = "limit_offset"
	OpProject         OperatorKind = "project"
	OpSetOp           OperatorKind = "set_op"
)

// ScanDetail is the Detail payload of an OpScan node.
type ScanDetail struct {
	Start ast.StartSpec
}

// FilterDetail is the Detail payload of an OpFilter node.
type FilterDetail struct {
	Alias     string
	Predicate predicate.P
}

// JoinDetail is the Detail payload of an OpJoin node.
type JoinDetail struct {
	Traversal ast.Traversal
}

// RecursiveExpandDetail is the Detail payload of an OpRecursiveExpand node.
type RecursiveExpandDetail struct {
	Traversal ast.Traversal
}

// VectorKNNDetail is the Detail payload of an OpVectorKNN node.
type VectorKNNDetail struct {
	Predicate predicate.VectorSimilarity
}

// AggregateDetail is the Detail payload of an OpAggregate node.
type AggregateDetail struct {
	GroupBy []predicate.FieldRef
	Having  predicate.P
}

// SortDetail is the Detail payload of an OpSort node.
type SortDetail struct {
	OrderBy []ast.OrderTerm
}

// LimitOffsetDetail is the Detail payload of an OpLimitOffset node.
type LimitOffsetDetail struct {
	Limit  *int
	Offset *int
}

// ProjectDetail is the Detail payload of an OpProject node.
type ProjectDetail struct {
	Projection      ast.Projection
	SelectiveFields []string
}

// SetOpDetail is the Detail payload of an OpSetOp node.
type SetOpDetail struct {
	Operator ast.SetOpKind
}

// Operator is one node of a lowered logical plan. Leaf nodes (scan) have a
// nil Input; set_op nodes use Left/Right instead of Input; every other
// kind has exactly one Input, its arity per §4.9.
type Operator struct {
	Kind   OperatorKind
	Input  *Operator
	Left   *Operator
	Right  *Operator
	Detail any
}

// LogicalPlan is the root of a lowered query, paired with the semantic
// state used to build it (needed downstream to render bind arguments).
type LogicalPlan struct {
	Root  *Operator
	State State
}

// predicatesForAlias returns the and-combined predicate bound to alias,
// or nil if none are bound there.
func predicatesForAlias(bindings []ast.PredicateBinding, alias string) predicate.P {
	var preds []predicate.P
	for _, b := range bindings {
		if b.TargetAlias == alias {
			preds = append(preds, b.Expression)
		}
	}
	if len(preds) == 0 {
		return nil
	}
	return predicate.AndAll(preds...)
}

// Lower dispatches to LowerStandard, LowerRecursive, or LowerSetOperation
// depending on q's concrete shape and recursion mode.
func Lower(q ast.Query, in State) (*LogicalPlan, error) {
	switch v := q.(type) {
	case *ast.QueryAst:
		s := in
		s.Query = v
		s, err := RunSemanticPasses(s)
		if err != nil {
			return nil, err
		}
		if v.IsRecursive() {
			root, err := LowerRecursive(s)
			if err != nil {
				return nil, err
			}
			return &LogicalPlan{Root: root, State: s}, nil
		}
		root, err := LowerStandard(s)
		if err != nil {
			return nil, err
		}
		return &LogicalPlan{Root: root, State: s}, nil
	case *ast.SetOperation:
		return LowerSetOperation(v, in)
	default:
		return nil, typegraph.NewCompilerInvariantError("lowering", "unknown query shape")
	}
}

// LowerStandard implements §4.9's standard entry mode operator ordering.
func LowerStandard(s State) (*Operator, error) {
	q := s.Query
	op := &Operator{Kind: OpScan, Detail: ScanDetail{Start: q.Start}}

	if startPred := predicatesForAlias(q.Predicates, q.Start.Alias); startPred != nil {
		op = &Operator{Kind: OpFilter, Input: op, Detail: FilterDetail{Alias: q.Start.Alias, Predicate: startPred}}
	}

	for _, tr := range q.Traversals {
		op = &Operator{Kind: OpJoin, Input: op, Detail: JoinDetail{Traversal: tr}}
		if pred := predicatesForAlias(q.Predicates, tr.EdgeAlias); pred != nil {
			op = &Operator{Kind: OpFilter, Input: op, Detail: FilterDetail{Alias: tr.EdgeAlias, Predicate: pred}}
		}
		if pred := predicatesForAlias(q.Predicates, tr.NodeAlias); pred != nil {
			op = &Operator{Kind: OpFilter, Input: op, Detail: FilterDetail{Alias: tr.NodeAlias, Predicate: pred}}
		}
	}

	if s.VectorPredicate != nil {
		op = &Operator{Kind: OpVectorKNN, Input: op, Detail: VectorKNNDetail{Predicate: *s.VectorPredicate}}
	}

	if len(q.GroupBy) > 0 || q.Having != nil {
		op = &Operator{Kind: OpAggregate, Input: op, Detail: AggregateDetail{GroupBy: q.GroupBy, Having: q.Having}}
	}

	if len(q.OrderBy) > 0 {
		op = &Operator{Kind: OpSort, Input: op, Detail: SortDetail{OrderBy: q.OrderBy}}
	}

	if s.EffectiveLimit != nil || q.Offset != nil {
		op = &Operator{Kind: OpLimitOffset, Input: op, Detail: LimitOffsetDetail{Limit: s.EffectiveLimit, Offset: q.Offset}}
	}

	op = &Operator{Kind: OpProject, Input: op, Detail: ProjectDetail{Projection: q.Projection, SelectiveFields: q.SelectiveFields}}
	return op, nil
}

// LowerRecursive implements §4.9's recursive entry mode operator ordering.
func LowerRecursive(s State) (*Operator, error) {
	q := s.Query
	if s.RecursiveTraversal == nil {
		return nil, typegraph.NewCompilerInvariantError("recursive lowering", "no recursive traversal was selected")
	}
	tr := *s.RecursiveTraversal

	op := &Operator{Kind: OpScan, Detail: ScanDetail{Start: q.Start}}

	if anchor := predicatesForAlias(q.Predicates, q.Start.Alias); anchor != nil {
		op = &Operator{Kind: OpFilter, Input: op, Detail: FilterDetail{Alias: q.Start.Alias, Predicate: anchor}}
	}

	op = &Operator{Kind: OpRecursiveExpand, Input: op, Detail: RecursiveExpandDetail{Traversal: tr}}

	var remaining []predicate.P
	if p := predicatesForAlias(q.Predicates, tr.EdgeAlias); p != nil {
		remaining = append(remaining, p)
	}
	if p := predicatesForAlias(q.Predicates, tr.NodeAlias); p != nil {
		remaining = append(remaining, p)
	}
	if len(remaining) > 0 {
		op = &Operator{Kind: OpFilter, Input: op, Detail: FilterDetail{Alias: tr.NodeAlias, Predicate: predicate.AndAll(remaining...)}}
	}

	if len(q.OrderBy) > 0 {
		op = &Operator{Kind: OpSort, Input: op, Detail: SortDetail{OrderBy: q.OrderBy}}
	}
	if s.EffectiveLimit != nil || q.Offset != nil {
		op = &Operator{Kind: OpLimitOffset, Input: op, Detail: LimitOffsetDetail{Limit: s.EffectiveLimit, Offset: q.Offset}}
	}

	op = &Operator{Kind: OpProject, Input: op, Detail: ProjectDetail{Projection: q.Projection, SelectiveFields: q.SelectiveFields}}
	return op, nil
}

// LowerSetOperation implements §4.9's set-operation entry mode: lower each
// side independently, combine with set_op, then apply an optional outer
// sort/limit_offset.
func LowerSetOperation(so *ast.SetOperation, in State) (*LogicalPlan, error) {
	left, err := Lower(so.Left, in)
	if err != nil {
		return nil, err
	}
	right, err := Lower(so.Right, in)
	if err != nil {
		return nil, err
	}

	op := &Operator{Kind: OpSetOp, Left: left.Root, Right: right.Root, Detail: SetOpDetail{Operator: so.Operator}}

	if len(so.OrderBy) > 0 {
		op = &Operator{Kind: OpSort, Input: op, Detail: SortDetail{OrderBy: so.OrderBy}}
	}
	if so.Limit != nil || so.Offset != nil {
		op = &Operator{Kind: OpLimitOffset, Input: op, Detail: LimitOffsetDetail{Limit: so.Limit, Offset: so.Offset}}
	}

	return &LogicalPlan{Root: op, State: left.State}, nil
}
