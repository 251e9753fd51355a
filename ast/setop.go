package ast

// SetOpKind is the closed set of set-combination operators.
type SetOpKind string

const (
	Union     SetOpKind = "union"
	UnionAll  SetOpKind = "unionAll"
	Intersect SetOpKind = "intersect"
	Except    SetOpKind = "except"
)

// SetOperation combines two composable queries. Left and Right are
// themselves Query values, so set operations nest arbitrarily (§3).
type SetOperation struct {
	Operator SetOpKind
	Left     Query
	Right    Query
	OrderBy  []OrderTerm
	Limit    *int
	Offset   *int
}

func (*SetOperation) queryNode()      {}
func (*SetOperation) SubqueryMarker() {}
