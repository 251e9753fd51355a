// Package sqlite implements dialect.Adapter for SQLite, using the
// built-in json_extract family for props access and the optional sqlite-vec
// extension for vector predicates.
//
// Placeholder convention: "?" in SQL text, positionally bound from Args,
// BindValue included.
package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/jsonpointer"
)

// Adapter implements dialect.Adapter for SQLite.
type Adapter struct {
	// VecExtension reports whether the sqlite-vec extension is loaded.
	// Without it, vector_similarity predicates are unsupported (§4.3
	// capabilities record), matching how the spec treats vector support
	// as a per-dialect, not universal, capability.
	VecExtension bool
}

var _ dialect.Adapter = Adapter{}

// New returns a SQLite adapter.
func New(vecExtension bool) Adapter {
	return Adapter{VecExtension: vecExtension}
}

func (a Adapter) Name() dialect.Name { return dialect.SQLite }

func (a Adapter) Capabilities() dialect.Capabilities {
	if a.VecExtension {
		return dialect.Capabilities{
			VectorPredicateStrategy: dialect.VectorNative,
			VectorMetrics:           []dialect.VectorMetric{dialect.MetricCosine, dialect.MetricL2},
			SupportsRecursiveCTE:    true,
		}
	}
	return dialect.Capabilities{
		VectorPredicateStrategy: dialect.VectorUnsupported,
		SupportsRecursiveCTE:    true,
	}
}

// CompilePath renders a pointer as a SQLite json_extract path
// (`$.a.b`, `$.a[0]`), stable across calls for a given pointer (§8).
func (a Adapter) CompilePath(ptr jsonpointer.Pointer) string {
	var b strings.Builder
	b.WriteString("$")
	for _, seg := range ptr.Segments() {
		if isArrayIndex(seg) {
			b.WriteString("[")
			b.WriteString(seg)
			b.WriteString("]")
			continue
		}
		b.WriteString(".")
		b.WriteString(strings.ReplaceAll(seg, `"`, `\"`))
	}
	return b.String()
}

func isArrayIndex(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func (a Adapter) JSONExtract(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_extract(%s, '%s')", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractText(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("CAST(json_extract(%s, '%s') AS TEXT)", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractNumber(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("CAST(json_extract(%s, '%s') AS REAL)", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractBoolean(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("CAST(json_extract(%s, '%s') AS INTEGER)", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONExtractDate(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("CAST(json_extract(%s, '%s') AS TEXT)", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONArrayLength(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_array_length(%s, '%s')", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONArrayContains(propsCol string, ptr jsonpointer.Pointer, value any) dialect.Expr {
	return dialect.Expr{
		SQL: fmt.Sprintf(
			"EXISTS (SELECT 1 FROM json_each(%s, '%s') WHERE json_each.value = ?)",
			propsCol, a.CompilePath(ptr),
		),
		Args: []any{value},
	}
}

func (a Adapter) JSONArrayContainsAll(propsCol string, ptr jsonpointer.Pointer, values []any) dialect.Expr {
	var parts []string
	var args []any
	for range values {
		parts = append(parts, "EXISTS (SELECT 1 FROM json_each(%[1]s, '%[2]s') WHERE json_each.value = ?)")
	}
	sql := fmt.Sprintf(strings.Join(parts, " AND "), propsCol, a.CompilePath(ptr))
	args = append(args, values...)
	return dialect.Expr{SQL: sql, Args: args}
}

func (a Adapter) JSONArrayContainsAny(propsCol string, ptr jsonpointer.Pointer, values []any) dialect.Expr {
	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = v
	}
	sql := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM json_each(%s, '%s') WHERE json_each.value IN (%s))",
		propsCol, a.CompilePath(ptr), strings.Join(placeholders, ","),
	)
	return dialect.Expr{SQL: sql, Args: args}
}

func (a Adapter) JSONHasPath(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_extract(%s, '%s') IS NOT NULL", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONPathIsNull(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_type(%s, '%s') = 'null'", propsCol, a.CompilePath(ptr))}
}

func (a Adapter) JSONPathIsNotNull(propsCol string, ptr jsonpointer.Pointer) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_type(%s, '%s') IS NOT 'null'", propsCol, a.CompilePath(ptr))}
}

var foldCaser = cases.Fold()

// ILike falls back to lower-casing, since SQLite has no native ILIKE
// (§4.3: "may fall back to lower-casing"). The pattern is Unicode
// case-folded before it is bound; the column goes through SQLite's
// LOWER(), which folds ASCII letters only, so non-ASCII letters in the
// column keep their case.
func (a Adapter) ILike(col, pattern string) dialect.Expr {
	return dialect.Expr{
		SQL:  fmt.Sprintf("LOWER(%s) LIKE ?", col),
		Args: []any{foldCaser.String(pattern)},
	}
}

func (a Adapter) InitializePath(idExpr string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_array(%s)", idExpr)}
}

func (a Adapter) ExtendPath(pathExpr, idExpr string) dialect.Expr {
	return dialect.Expr{SQL: fmt.Sprintf("json_insert(%s, '$[#]', %s)", pathExpr, idExpr)}
}

func (a Adapter) CycleCheck(idExpr, pathExpr string) dialect.Expr {
	return dialect.Expr{
		SQL: fmt.Sprintf(
			"EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = %s)",
			pathExpr, idExpr,
		),
	}
}

func (a Adapter) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (a Adapter) BindValue(value any, ordinal int) dialect.Expr {
	return dialect.Expr{SQL: "?", Args: []any{value}}
}

func (a Adapter) BooleanLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (a Adapter) BooleanLiteralString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (a Adapter) CurrentTimestamp() string { return "CURRENT_TIMESTAMP" }

func (a Adapter) SupportsVectors() bool { return a.VecExtension }

func (a Adapter) FormatEmbedding(values []float64) (dialect.Expr, error) {
	if err := validateFinite(values); err != nil {
		return dialect.Expr{}, err
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return dialect.Expr{SQL: "?", Args: []any{"[" + strings.Join(parts, ",") + "]"}}, nil
}

func (a Adapter) VectorDistance(col string, queryEmbedding []float64, metric dialect.VectorMetric) (dialect.Expr, error) {
	if !a.VecExtension {
		return dialect.Expr{}, fmt.Errorf("sqlite: vector distance requires the sqlite-vec extension, none loaded")
	}
	embed, err := a.FormatEmbedding(queryEmbedding)
	if err != nil {
		return dialect.Expr{}, err
	}
	var fn string
	switch metric {
	case dialect.MetricCosine:
		fn = "vec_distance_cosine"
	case dialect.MetricL2:
		fn = "vec_distance_l2"
	default:
		return dialect.Expr{}, fmt.Errorf("sqlite: unsupported vector metric %q", metric)
	}
	return dialect.Expr{SQL: fmt.Sprintf("%s(%s, %s)", fn, col, embed.SQL), Args: embed.Args}, nil
}

func (a Adapter) TableNameForKind(kind string) string {
	return dialect.TableNameForKind(kind)
}

func validateFinite(values []float64) error {
	for _, v := range values {
		if v != v || v > maxFinite || v < -maxFinite {
			return fmt.Errorf("sqlite: embedding component %v is not finite", v)
		}
	}
	return nil
}

const maxFinite = 1.7976931348623157e+308
