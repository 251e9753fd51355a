package schema

import "github.com/nicia-ai/typegraph/valuetype"

// SystemColumn pairs a logical name the AST and WHERE-builder use with the
// physical snake_case column name and ValueType the schema introspector
// would otherwise produce for a props field (§6).
type SystemColumn struct {
	Logical  string
	Physical string
	Type     valuetype.ValueType
}

// NodeSystemColumns returns the recognized system columns for node kinds,
// in a stable declaration order.
func NodeSystemColumns() []SystemColumn {
	return []SystemColumn{
		{Logical: "graphId", Physical: "graph_id", Type: valuetype.String},
		{Logical: "kind", Physical: "kind", Type: valuetype.String},
		{Logical: "id", Physical: "id", Type: valuetype.String},
		{Logical: "createdAt", Physical: "created_at", Type: valuetype.Date},
		{Logical: "updatedAt", Physical: "updated_at", Type: valuetype.Date},
		{Logical: "deletedAt", Physical: "deleted_at", Type: valuetype.Date},
		{Logical: "validFrom", Physical: "valid_from", Type: valuetype.Date},
		{Logical: "validTo", Physical: "valid_to", Type: valuetype.Date},
		{Logical: "version", Physical: "version", Type: valuetype.Number},
	}
}

// EdgeSystemColumns returns the recognized system columns for edge kinds:
// every node column except version, plus the edge endpoint columns (§6).
func EdgeSystemColumns() []SystemColumn {
	cols := make([]SystemColumn, 0, 12)
	for _, c := range NodeSystemColumns() {
		if c.Logical == "version" {
			continue
		}
		cols = append(cols, c)
	}
	cols = append(cols,
		SystemColumn{Logical: "fromKind", Physical: "from_kind", Type: valuetype.String},
		SystemColumn{Logical: "fromId", Physical: "from_id", Type: valuetype.String},
		SystemColumn{Logical: "toKind", Physical: "to_kind", Type: valuetype.String},
		SystemColumn{Logical: "toId", Physical: "to_id", Type: valuetype.String},
	)
	return cols
}

// LookupNodeSystemColumn returns the node system column for a logical
// name, if recognized.
func LookupNodeSystemColumn(logical string) (SystemColumn, bool) {
	for _, c := range NodeSystemColumns() {
		if c.Logical == logical {
			return c, true
		}
	}
	return SystemColumn{}, false
}

// LookupEdgeSystemColumn returns the edge system column for a logical
// name, if recognized.
func LookupEdgeSystemColumn(logical string) (SystemColumn, bool) {
	for _, c := range EdgeSystemColumns() {
		if c.Logical == logical {
			return c, true
		}
	}
	return SystemColumn{}, false
}

// IndexScope is the closed tag for which leading system columns an index
// keys on (§6 "Scope-to-columns mapping for index keys").
type IndexScope string

const (
	ScopeGraphAndKind IndexScope = "graphAndKind"
	ScopeGraph        IndexScope = "graph"
	ScopeNone         IndexScope = "none"
)

// EdgeDirection selects which endpoint column an edge index appends after
// its scope columns.
type EdgeDirection string

const (
	DirectionOut  EdgeDirection = "out"
	DirectionIn   EdgeDirection = "in"
	DirectionNone EdgeDirection = "none"
)

// NodeScopeColumns returns the physical scope-determined leading system
// columns for a node index, in fixed order.
func NodeScopeColumns(scope IndexScope) []string {
	switch scope {
	case ScopeGraphAndKind:
		return []string{"graph_id", "kind"}
	case ScopeGraph:
		return []string{"graph_id"}
	default:
		return nil
	}
}

// EdgeScopeColumns returns the physical scope-determined leading system
// columns for an edge index: the node scope columns, then the direction's
// endpoint column (§6).
func EdgeScopeColumns(scope IndexScope, direction EdgeDirection) []string {
	cols := NodeScopeColumns(scope)
	switch direction {
	case DirectionOut:
		cols = append(cols, "from_id")
	case DirectionIn:
		cols = append(cols, "to_id")
	}
	return cols
}
