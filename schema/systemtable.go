package schema

import (
	"strconv"

	atschema "ariga.io/atlas/sql/schema"
)

// NodeSystemTable returns the node system-column table as a real atlas
// *schema.Table, grounded on the teacher's migration layer (which models
// every physical table this way) rather than a hand-rolled struct.
// HasColumn checks a physical column name against it. The indexdef
// builders and NodeScopeColumns/EdgeScopeColumns do not consult it.
func NodeSystemTable() *atschema.Table {
	t := atschema.NewTable("nodes")
	for _, c := range NodeSystemColumns() {
		t.AddColumns(atlasColumn(c))
	}
	return t
}

// EdgeSystemTable is NodeSystemTable for edge kinds.
func EdgeSystemTable() *atschema.Table {
	t := atschema.NewTable("edges")
	for _, c := range EdgeSystemColumns() {
		t.AddColumns(atlasColumn(c))
	}
	return t
}

func atlasColumn(c SystemColumn) *atschema.Column {
	switch c.Type {
	case "string":
		return atschema.NewStringColumn(c.Physical, "text")
	case "number":
		return atschema.NewIntColumn(c.Physical, "bigint")
	case "date":
		return atschema.NewTimeColumn(c.Physical, "timestamptz")
	default:
		return atschema.NewColumn(c.Physical)
	}
}

// HasColumn reports whether an atlas table carries a column with the given
// physical name.
func HasColumn(t *atschema.Table, physical string) bool {
	_, ok := t.Column(physical)
	return ok
}

// EmbeddingColumnType models a pgvector embedding column as atlas models
// any extension type it cannot represent natively: an UnsupportedType
// carrying the raw type string ("vector", or "vector(N)" when dimensions
// is positive).
func EmbeddingColumnType(dimensions int) *atschema.ColumnType {
	raw := "vector"
	if dimensions > 0 {
		raw = "vector(" + strconv.Itoa(dimensions) + ")"
	}
	return &atschema.ColumnType{
		Type: &atschema.UnsupportedType{T: raw},
		Raw:  raw,
	}
}
