package compiler

import (
	"fmt"
	"strings"
)

// Explain renders a LogicalPlan as an indented operator tree, for
// debugging and golden-file tests. It never touches a database: it only
// walks the already-lowered plan object (SPEC_FULL §D.2).
func Explain(plan *LogicalPlan) string {
	if plan == nil || plan.Root == nil {
		return ""
	}
	var b strings.Builder
	explainNode(&b, plan.Root, 0)
	return strings.TrimRight(b.String(), "\n")
}

func explainNode(b *strings.Builder, op *Operator, depth int) {
	if op == nil {
		return
	}
	fmt.Fprintf(b, "%s%s%s\n", strings.Repeat("  ", depth), string(op.Kind), explainDetail(op))
	if op.Left != nil || op.Right != nil {
		explainNode(b, op.Left, depth+1)
		explainNode(b, op.Right, depth+1)
		return
	}
	explainNode(b, op.Input, depth+1)
}

func explainDetail(op *Operator) string {
	switch d := op.Detail.(type) {
	case ScanDetail:
		return fmt.Sprintf("(%s: %s)", d.Start.Alias, strings.Join(d.Start.Kinds, "|"))
	case FilterDetail:
		return fmt.Sprintf("(%s)", d.Alias)
	case JoinDetail:
		return fmt.Sprintf("(%s -> %s)", d.Traversal.EdgeAlias, d.Traversal.NodeAlias)
	case RecursiveExpandDetail:
		return fmt.Sprintf("(%s, min=%d, max=%d)", d.Traversal.EdgeAlias, d.Traversal.VariableLength.MinDepth, d.Traversal.VariableLength.MaxDepth)
	case VectorKNNDetail:
		return fmt.Sprintf("(metric=%s, limit=%d)", d.Predicate.Metric, d.Predicate.Limit)
	case AggregateDetail:
		return fmt.Sprintf("(groupBy=%d)", len(d.GroupBy))
	case SortDetail:
		return fmt.Sprintf("(%d terms)", len(d.OrderBy))
	case LimitOffsetDetail:
		return fmt.Sprintf("(limit=%v, offset=%v)", intPtrString(d.Limit), intPtrString(d.Offset))
	case ProjectDetail:
		return fmt.Sprintf("(%d fields)", len(d.Projection.Fields)+len(d.SelectiveFields))
	case SetOpDetail:
		return fmt.Sprintf("(%s)", d.Operator)
	default:
		return ""
	}
}

func intPtrString(p *int) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *p)
}
