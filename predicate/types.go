// Package predicate implements the closed-sum predicate expression AST
// (§3), the fluent immutable Predicate Builder (§4.4), and literal
// coercion (§4.5).
//
// The sum is realized as a sealed interface: every concrete predicate type
// embeds an unexported marker method so no type outside this package can
// implement P, letting every compiler pass type-switch over P
// exhaustively, in the spirit of the teacher's discriminated predicate
// trees but adapted from runtime-polymorphic closures to immutable AST
// values.
package predicate

import (
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/valuetype"
)

// P is any predicate expression. Kind reports the discriminant for
// debugging and Explain rendering; callers that need to act on the
// concrete shape type-switch on the sealed set of structs below.
type P interface {
	Kind() string
	sealed()
}

// FieldRef addresses a column: the logical column path plus, when the
// field lives inside the props document, the JSON pointer within it.
type FieldRef struct {
	Alias       string
	Path        []string
	JSONPointer jsonpointer.Pointer
	ValueType   valuetype.ValueType
	ElementType valuetype.ValueType
}

// IsPropsField reports whether this reference addresses a props document
// field rather than a top-level/system column.
func (f FieldRef) IsPropsField() bool {
	return len(f.Path) > 0 && f.Path[0] == "props"
}

// Literal is a typed constant value.
type Literal struct {
	Value     any
	ValueType valuetype.ValueType
}

// Parameter is a named placeholder bound by the caller at execution time,
// rather than a value known during compilation.
type Parameter struct {
	Name      string
	ValueType valuetype.ValueType
}

// ComparisonOp is the closed set of scalar comparison operators.
type ComparisonOp string

const (
	OpEQ    ComparisonOp = "eq"
	OpNEQ   ComparisonOp = "neq"
	OpGT    ComparisonOp = "gt"
	OpGTE   ComparisonOp = "gte"
	OpLT    ComparisonOp = "lt"
	OpLTE   ComparisonOp = "lte"
	OpIn    ComparisonOp = "in"
	OpNotIn ComparisonOp = "notIn"
)

// IsListOp reports whether op expects a list right-hand side.
func (op ComparisonOp) IsListOp() bool { return op == OpIn || op == OpNotIn }

// StringOperator is the closed set of string-matching operators.
type StringOperator string

const (
	StringContains   StringOperator = "contains"
	StringStartsWith StringOperator = "startsWith"
	StringEndsWith   StringOperator = "endsWith"
	StringLike       StringOperator = "like"
	StringILike      StringOperator = "ilike"
)

// NullOperator is the closed set of null-check operators.
type NullOperator string

const (
	IsNull    NullOperator = "isNull"
	IsNotNull NullOperator = "isNotNull"
)

// ArrayOperator is the closed set of array operators.
type ArrayOperator string

const (
	ArrayContains     ArrayOperator = "contains"
	ArrayContainsAll  ArrayOperator = "containsAll"
	ArrayContainsAny  ArrayOperator = "containsAny"
	ArrayIsEmpty      ArrayOperator = "isEmpty"
	ArrayIsNotEmpty   ArrayOperator = "isNotEmpty"
	ArrayLengthEq     ArrayOperator = "lengthEq"
	ArrayLengthGt     ArrayOperator = "lengthGt"
	ArrayLengthGte    ArrayOperator = "lengthGte"
	ArrayLengthLt     ArrayOperator = "lengthLt"
	ArrayLengthLte    ArrayOperator = "lengthLte"
)

// ObjectOperator is the closed set of object/nested-document operators.
type ObjectOperator string

const (
	ObjectHasKey        ObjectOperator = "hasKey"
	ObjectHasPath       ObjectOperator = "hasPath"
	ObjectPathEquals    ObjectOperator = "pathEquals"
	ObjectPathContains  ObjectOperator = "pathContains"
	ObjectPathIsNull    ObjectOperator = "pathIsNull"
	ObjectPathIsNotNull ObjectOperator = "pathIsNotNull"
)

// VectorMetric is the closed set of vector distance metrics.
type VectorMetric string

const (
	MetricCosine       VectorMetric = "cosine"
	MetricL2           VectorMetric = "l2"
	MetricInnerProduct VectorMetric = "inner_product"
)

// AggregateFunc names an aggregate function usable in HAVING comparisons.
type AggregateFunc string

const (
	AggCount AggregateFunc = "count"
	AggSum   AggregateFunc = "sum"
	AggAvg   AggregateFunc = "avg"
	AggMin   AggregateFunc = "min"
	AggMax   AggregateFunc = "max"
)

// AggregateRef names the aggregate function and field it applies to.
type AggregateRef struct {
	Func      AggregateFunc
	Field     FieldRef
	OutputName string
}

// Subquery is satisfied by ast.QueryAst (and other composable query
// shapes). It is abstracted here, rather than imported directly, so the
// ast package may in turn embed predicate.P without an import cycle.
type Subquery interface {
	SubqueryMarker()
}

type base struct{}

func (base) sealed() {}

// Comparison is op(left=FieldRef, right). right is a Literal or Parameter
// for scalar ops, or []Literal for in/notIn.
type Comparison struct {
	base
	Op    ComparisonOp
	Field FieldRef
	Right any
}

func (Comparison) Kind() string { return "comparison" }

// StringOp is a string-matching predicate against a field.
type StringOp struct {
	base
	Op      StringOperator
	Field   FieldRef
	Pattern string
}

func (StringOp) Kind() string { return "string_op" }

// NullCheck tests whether a field is null.
type NullCheck struct {
	base
	Op    NullOperator
	Field FieldRef
}

func (NullCheck) Kind() string { return "null_check" }

// Between tests field within [Lower, Upper] inclusive.
type Between struct {
	base
	Field FieldRef
	Lower Literal
	Upper Literal
}

func (Between) Kind() string { return "between" }

// ArrayOp is an array-shaped predicate.
type ArrayOp struct {
	base
	Op     ArrayOperator
	Field  FieldRef
	Values []Literal
	Length int
}

func (ArrayOp) Kind() string { return "array_op" }

// ObjectOp addresses a nested document path beneath Field.
type ObjectOp struct {
	base
	Op          ObjectOperator
	Field       FieldRef
	Pointer     jsonpointer.Pointer
	Value       Literal
	ValueType   valuetype.ValueType
	ElementType valuetype.ValueType
}

func (ObjectOp) Kind() string { return "object_op" }

// And is an n-ary conjunction. The fluent builder always produces exactly
// two children in argument order; And built directly from a slice may
// carry more.
type And struct {
	base
	Predicates []P
}

func (And) Kind() string { return "and" }

// Or is an n-ary disjunction, the Or analogue of And.
type Or struct {
	base
	Predicates []P
}

func (Or) Kind() string { return "or" }

// Not negates a single child predicate. Double negation is preserved
// structurally, never collapsed.
type Not struct {
	base
	Predicate P
}

func (Not) Kind() string { return "not" }

// AggregateComparison compares an aggregate's result against a literal,
// for use in HAVING.
type AggregateComparison struct {
	base
	Op        ComparisonOp
	Aggregate AggregateRef
	Value     Literal
}

func (AggregateComparison) Kind() string { return "aggregate_comparison" }

// Exists wraps a correlated subquery as an existence check.
type Exists struct {
	base
	Subquery Subquery
	Negated  bool
}

func (Exists) Kind() string { return "exists" }

// InSubquery compares a field against a single-column subquery projection.
type InSubquery struct {
	base
	Field    FieldRef
	Subquery Subquery
	Negated  bool
}

func (InSubquery) Kind() string { return "in_subquery" }

// VectorSimilarity is a nearest-neighbor constraint. At most one may
// appear per query, and never beneath Or or Not (enforced by the
// vector-predicate compiler pass, not by this type).
type VectorSimilarity struct {
	base
	Field          FieldRef
	QueryEmbedding []float64
	Metric         VectorMetric
	Limit          int
	MinScore       *float64
}

func (VectorSimilarity) Kind() string { return "vector_similarity" }
