package dialect

import "github.com/nicia-ai/typegraph/jsonpointer"

// VectorPredicateStrategy reports how (or whether) a dialect evaluates
// vector_similarity predicates.
type VectorPredicateStrategy string

const (
	VectorNative      VectorPredicateStrategy = "native"
	VectorUnsupported VectorPredicateStrategy = "unsupported"
)

// VectorMetric mirrors predicate.VectorMetric without importing the
// predicate package, keeping dialect a leaf package the way the teacher's
// own dialect/sql sits beneath everything else.
type VectorMetric string

const (
	MetricCosine       VectorMetric = "cosine"
	MetricL2           VectorMetric = "l2"
	MetricInnerProduct VectorMetric = "inner_product"
)

// Capabilities is the dialect's static capability record (§4.3).
type Capabilities struct {
	VectorPredicateStrategy VectorPredicateStrategy
	VectorMetrics           []VectorMetric
	SupportsRecursiveCTE    bool
}

// SupportsVectorMetric reports whether metric is in the capability list.
func (c Capabilities) SupportsVectorMetric(metric VectorMetric) bool {
	for _, m := range c.VectorMetrics {
		if m == metric {
			return true
		}
	}
	return false
}

// Expr is a compiled SQL fragment: raw text plus any bind arguments the
// fragment's parameter placeholders refer to, in order.
type Expr struct {
	SQL  string
	Args []any
}

// Adapter is the set of dialect-specific expression constructors every
// compiler pass and the index-definition subsystem compile against,
// instead of emitting dialect SQL inline (§4.3).
type Adapter interface {
	Name() Name
	Capabilities() Capabilities

	// JSON
	CompilePath(ptr jsonpointer.Pointer) string
	JSONExtract(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONExtractText(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONExtractNumber(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONExtractBoolean(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONExtractDate(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONArrayLength(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONArrayContains(propsCol string, ptr jsonpointer.Pointer, value any) Expr
	JSONArrayContainsAll(propsCol string, ptr jsonpointer.Pointer, values []any) Expr
	JSONArrayContainsAny(propsCol string, ptr jsonpointer.Pointer, values []any) Expr
	JSONHasPath(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONPathIsNull(propsCol string, ptr jsonpointer.Pointer) Expr
	JSONPathIsNotNull(propsCol string, ptr jsonpointer.Pointer) Expr

	// String
	ILike(col, pattern string) Expr

	// Recursive path accumulation
	InitializePath(idExpr string) Expr
	ExtendPath(pathExpr, idExpr string) Expr
	CycleCheck(idExpr, pathExpr string) Expr

	// Identifier/value
	QuoteIdentifier(name string) string
	BindValue(value any, ordinal int) Expr
	BooleanLiteral(b bool) string
	BooleanLiteralString(b bool) string
	CurrentTimestamp() string

	// Vector
	SupportsVectors() bool
	FormatEmbedding(values []float64) (Expr, error)
	VectorDistance(col string, queryEmbedding []float64, metric VectorMetric) (Expr, error)

	// Naming
	TableNameForKind(kind string) string
}
