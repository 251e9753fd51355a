// Package postgres implements dialect.Adapter for PostgreSQL, using JSONB
// path operators for props access and pgvector (or a plain float8[]
// fallback) for embeddings.
//
// Placeholder convention: every Expr's SQL text uses "?" for each bound
// value, in the order they appear in Args. BindValue is the exception: it
// renders the numbered "$N" placeholder for the ordinal it is given.
// Nothing in this module rewrites "?" placeholders into "$N" form.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/jsonpointer"
)

// Adapter implements dialect.Adapter for PostgreSQL.
type Adapter struct {
	// VectorExtension reports whether the target database has pgvector
	// installed. When false, FormatEmbedding falls back to a plain
	// float8[] representation via pq.Array, and VectorDistance returns an
	// error.
	VectorExtension bool
}

var _ dialect.Adapter = Adapter{}

// New returns a Postgres adapter. vectorExtension should reflect whether
// pgvector is installed on the target database.
func New(vectorExtension bool) Adapter {
	return Adapter{VectorExtension: vectorExtension}
}

func (a Adapter) Name() dialect.Name { return dialect.Postgres }

func (a Adapter) Capabilities() dialect.Capabilities {
	return dialect.Capabilities{
		VectorPredicateStrategy: dialect.VectorNative,
		VectorMetrics:           []dialect.VectorMetric{dialect.MetricCosine, dialect.MetricL2, dialect.MetricInnerProduct},
		SupportsRecursiveCTE:    true,
	}
}

// CompilePath renders a pointer as a Postgres text-array literal suitable
// for the `#>`/`#>>` path operators: `{seg1,seg2}`. The encoding is stable
// for a given pointer so repeated calls emit byte-identical text (§8
// dialect path stability law).
func (a Adapter) CompilePath(ptr jsonpointer.Pointer) string {
	segs := ptr.Segments()
	quoted := make([]string, len(segs))
	for i, s := range segs {
		quoted[i] = strings.ReplaceAll(s, `"`, `\"`)
	}
	return "{" + strings.Join(quoted, ",") + "}"
}

func (a Adapter) JSONExtract(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s #> '%s'", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractText(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s #>> '%s'", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractNumber(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("(%s #>> '%s')::numeric", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractBoolean(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("(%s #>> '%s')::boolean", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractDate(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("(%s #>> '%s')::timestamptz", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONArrayLength(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("jsonb_array_length(%s #> '%s')", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONArrayContains(propsCol string, ptr jsonpointer.Pointer, value any) dialect.Expr {
	return dialect.Expr{
		SQL:  fmt.Sprintf("(%s #> '%s') @> to_jsonb(?::text)::jsonb", propsCol, a.CompilePath(ptr)),
		Args: []any{value},
	}
}

func (a Adapter) JSONArrayContainsAll(propsCol string, ptr jsonpointer.Pointer, values []any) dialect.Expr {
	return dialect.Expr{
		SQL:  fmt.Sprintf("(%s #> '%s') @> ?::jsonb", propsCol, a.CompilePath(ptr)),
		Args: []any{values},
	}
}

func (a Adapter) JSONArrayContainsAny(propsCol string, ptr jsonpointer.Pointer, values []any) dialect.Expr {
	return dialect.Expr{
		SQL:  fmt.Sprintf("(%s #> '%s') ?| ?", propsCol, a.CompilePath(ptr)),
		Args: []any{pq.Array(values)},
	}
}

func (a Adapter) JSONHasPath(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s #> '%s' IS NOT NULL", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONPathIsNull(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("jsonb_typeof(%s #> '%s') = 'null'", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONPathIsNotNull(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("jsonb_typeof(%s #> '%s') IS DISTINCT FROM 'null'", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) ILike(col, pattern string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s ILIKE ?", col), Args: []any{pattern}}
}

func (a Adapter) InitializePath(idExpr string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("ARRAY[%s]", idExpr)}
}

func (a Adapter) ExtendPath(pathExpr, idExpr string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s || %s", pathExpr, idExpr)}
}

func (a Adapter) CycleCheck(idExpr, pathExpr string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("%s = ANY(%s)", idExpr, pathExpr)}
}

func (a Adapter) QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

func (a Adapter) BindValue(value any, ordinal int) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("$%d", ordinal), Args: []any{value}}
}

func (a Adapter) BooleanLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (a Adapter) BooleanLiteralString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (a Adapter) CurrentTimestamp() string { return "now()" }

func (a Adapter) SupportsVectors() bool { return true }

func (a Adapter) FormatEmbedding(values []float64) (dialect.Expr, error) {
	if err := validateFinite(values); err != nil {
		return dialect.Expr{}, err
	}
	if a.VectorExtension {
		return dialect.Expr{SQL: "?::vector", Args: []any{formatVectorLiteral(values)}}, nil
	}
	return dialect.Expr{SQL: "?::float8[]", Args: []any{pq.Array(values)}}, nil
}

func (a Adapter) VectorDistance(col string, queryEmbedding []float64, metric dialect.VectorMetric) (dialect.Expr, error) {
	embed, err := a.FormatEmbedding(queryEmbedding)
	if err != nil {
		return dialect.Expr{}, err
	}
	if !a.VectorExtension {
		return dialect.Expr{}, fmt.Errorf("postgres: vector distance requires pgvector, none installed")
	}
	var op string
	switch metric {
	case dialect.MetricCosine:
		op = "<=>"
	case dialect.MetricL2:
		op = "<->"
	case dialect.MetricInnerProduct:
		op = "<#>"
	default:
		return dialect.Expr{}, fmt.Errorf("postgres: unsupported vector metric %q", metric)
	}
	return dialect.Expr{SQL: fmt.Sprintf("%s %s %s", col, op, embed.SQL), Args: embed.Args}, nil
}

func (a Adapter) TableNameForKind(kind string) string {
	return dialect.TableNameForKind(kind)
}

func validateFinite(values []float64) error {
	for _, v := range values {
		if v != v || v > maxFinite || v < -maxFinite {
			return fmt.Errorf("postgres: embedding component %v is not finite", v)
		}
	}
	return nil
}

const maxFinite = 1.7976931348623157e+308

func formatVectorLiteral(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
