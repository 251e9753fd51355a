package postgres

import (
	atlaspg "ariga.io/atlas/sql/postgres"

	"github.com/nicia-ai/typegraph/valuetype"
)

// SystemColumnTypeName maps a ValueType to the concrete Postgres type
// name atlas uses to describe it, so schema.SystemColumn metadata can be
// rendered into a dialect-accurate atlas *schema.ColumnType instead of
// the dialect-agnostic placeholders schema.NodeSystemTable/
// EdgeSystemTable fall back to for any database. Embedding columns are
// deliberately absent here: pgvector's vector(N) type has no atlas
// postgres constant (atlas cannot model extension types natively), and
// is instead represented via schema.EmbeddingColumnType's UnsupportedType.
func SystemColumnTypeName(vt valuetype.ValueType) string {
	switch vt {
	case valuetype.String:
		return atlaspg.TypeText
	case valuetype.Number:
		return atlaspg.TypeBigInt
	case valuetype.Boolean:
		return atlaspg.TypeBoolean
	case valuetype.Date:
		return atlaspg.TypeTimestampWTZ
	default:
		return atlaspg.TypeText
	}
}
