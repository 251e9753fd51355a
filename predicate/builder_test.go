package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/predicate"
	"github.com/nicia-ai/typegraph/valuetype"
)

func nameField() predicate.Field {
	return predicate.On(predicate.FieldRef{Alias: "p", Path: []string{"props", "name"}, ValueType: valuetype.String})
}

func ageField() predicate.Field {
	return predicate.On(predicate.FieldRef{Alias: "p", Path: []string{"props", "age"}, ValueType: valuetype.Number})
}

func TestBuilderImmutability(t *testing.T) {
	a, err := nameField().EQ("Alice")
	require.NoError(t, err)
	b, err := ageField().GT(30)
	require.NoError(t, err)

	combined := a.And(b)

	// a and b are unaffected: rebuilding from the originals still yields
	// their original single-predicate shape.
	_, aIsAnd := a.Build().(*predicate.And)
	assert.False(t, aIsAnd)
	_, bIsAnd := b.Build().(*predicate.And)
	assert.False(t, bIsAnd)

	and, ok := combined.Build().(*predicate.And)
	require.True(t, ok)
	require.Len(t, and.Predicates, 2)
	assert.Same(t, a.Build().(*predicate.Comparison), and.Predicates[0].(*predicate.Comparison))
}

func TestBuilderAndOrderPreserved(t *testing.T) {
	a, _ := nameField().EQ("Alice")
	b, _ := nameField().EQ("Bob")
	and := a.And(b).Build().(*predicate.And)
	require.Len(t, and.Predicates, 2)
	assert.Equal(t, "Alice", and.Predicates[0].(*predicate.Comparison).Right.(predicate.Literal).Value)
	assert.Equal(t, "Bob", and.Predicates[1].(*predicate.Comparison).Right.(predicate.Literal).Value)
}

func TestBuilderNotDoesNotCollapse(t *testing.T) {
	a, _ := nameField().EQ("Alice")
	doubled := a.Not().Not()
	outer, ok := doubled.Build().(*predicate.Not)
	require.True(t, ok)
	inner, ok := outer.Predicate.(*predicate.Not)
	require.True(t, ok)
	assert.Equal(t, a.Build(), inner.Predicate)
}

func TestFieldInListRequiresListOp(t *testing.T) {
	b, err := ageField().In(18, 21, 65)
	require.NoError(t, err)
	cmp := b.Build().(*predicate.Comparison)
	assert.Equal(t, predicate.OpIn, cmp.Op)
	lits, ok := cmp.Right.([]predicate.Literal)
	require.True(t, ok)
	assert.Len(t, lits, 3)
}

func TestFieldEQUnsupportedLiteral(t *testing.T) {
	_, err := ageField().EQ("not a number")
	require.Error(t, err)
	assert.True(t, typegraph.IsUnsupportedLiteralError(err))
}

func TestCoerceLiteralDatePreferredOverride(t *testing.T) {
	lit, err := predicate.CoerceLiteral("createdAt", "2024-01-02T15:04:05Z", valuetype.String, valuetype.Date)
	require.NoError(t, err)
	assert.Equal(t, valuetype.Date, lit.ValueType)
}

func TestVectorSimilarityOfRejectsNonFinite(t *testing.T) {
	field := predicate.FieldRef{Alias: "p", Path: []string{"props", "embedding"}, ValueType: valuetype.Embedding}
	_, err := predicate.VectorSimilarityOf(field, []float64{0.1, nan()}, predicate.MetricCosine, 8, nil)
	require.Error(t, err)
	assert.True(t, typegraph.IsUnsupportedLiteralError(err))
}

func TestVectorSimilarityOfRejectsNonPositiveLimit(t *testing.T) {
	field := predicate.FieldRef{Alias: "p", Path: []string{"props", "embedding"}, ValueType: valuetype.Embedding}
	_, err := predicate.VectorSimilarityOf(field, []float64{0.1, 0.2}, predicate.MetricCosine, 0, nil)
	require.Error(t, err)
	assert.True(t, typegraph.IsCompilerInvariantError(err))
}

func nan() float64 {
	var zero float64
	return zero / zero
}
