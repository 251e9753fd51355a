package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/dialect/sqlite"
	"github.com/nicia-ai/typegraph/jsonpointer"
)

func TestCompilePathArrayIndex(t *testing.T) {
	a := sqlite.New(false)
	ptr, err := jsonpointer.Parse("/tags/0")
	require.NoError(t, err)
	assert.Equal(t, "$.tags[0]", a.CompilePath(ptr))
}

func TestCompilePathStable(t *testing.T) {
	a := sqlite.New(false)
	ptr, _ := jsonpointer.Parse("/address/city")
	assert.Equal(t, a.CompilePath(ptr), a.CompilePath(ptr))
}

func TestCapabilitiesWithoutVecExtension(t *testing.T) {
	a := sqlite.New(false)
	caps := a.Capabilities()
	assert.Equal(t, dialect.VectorUnsupported, caps.VectorPredicateStrategy)
	assert.False(t, a.SupportsVectors())
}

func TestCapabilitiesWithVecExtension(t *testing.T) {
	a := sqlite.New(true)
	caps := a.Capabilities()
	assert.Equal(t, dialect.VectorNative, caps.VectorPredicateStrategy)
	assert.True(t, caps.SupportsVectorMetric(dialect.MetricCosine))
	assert.False(t, caps.SupportsVectorMetric(dialect.MetricInnerProduct))
}

func TestILikeFoldsCase(t *testing.T) {
	a := sqlite.New(false)
	expr := a.ILike("name", "Ça Va")
	assert.Contains(t, expr.SQL, "LOWER(name) LIKE")
	require.Len(t, expr.Args, 1)
	assert.Equal(t, "ça va", expr.Args[0])
}

func TestVectorDistanceWithoutExtension(t *testing.T) {
	a := sqlite.New(false)
	_, err := a.VectorDistance("e", []float64{0.1, 0.2}, dialect.MetricCosine)
	assert.Error(t, err)
}
