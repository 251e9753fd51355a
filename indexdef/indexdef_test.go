package indexdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/dialect/postgres"
	"github.com/nicia-ai/typegraph/indexdef"
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/schema"
	"github.com/nicia-ai/typegraph/valuetype"
)

func personIntrospector() *schema.Introspector {
	nodes := map[string]map[string]*schema.FieldTypeInfo{
		"Person": {
			"name": {Type: valuetype.String},
			"age":  {Type: valuetype.Number},
			"address": {
				Type: valuetype.Object,
				Fields: map[string]*schema.FieldTypeInfo{
					"city": {Type: valuetype.String},
				},
			},
			"embedding": {Type: valuetype.Embedding},
			"tags":      {Type: valuetype.Array, ElementType: valuetype.String},
		},
	}
	edges := map[string]map[string]*schema.FieldTypeInfo{
		"FriendOf": {
			"since": {Type: valuetype.Date},
		},
	}
	return schema.New(nodes, edges)
}

func TestNodeBuilderSingleField(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.Fields("name").Build("Person", in)
	require.NoError(t, err)
	assert.Len(t, idx.Fields, 1)
	assert.Equal(t, valuetype.String, idx.FieldValueTypes[0])
	assert.False(t, idx.Unique)
	assert.Equal(t, schema.ScopeGraphAndKind, idx.Scope)
	assert.NotEmpty(t, idx.Name)
}

func TestNodeBuilderUniqueAndName(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.Fields("name").Unique().Name("idx_person_name").Build("Person", in)
	require.NoError(t, err)
	assert.True(t, idx.Unique)
	assert.Equal(t, "idx_person_name", idx.Name)
}

func TestNodeBuilderNestedField(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.Fields("address/city").Build("Person", in)
	require.NoError(t, err)
	require.Len(t, idx.Fields, 1)
	assert.Equal(t, "/address/city", idx.Fields[0].String())
	assert.Equal(t, valuetype.String, idx.FieldValueTypes[0])
}

func TestNodeBuilderRejectsUnindexableType(t *testing.T) {
	in := personIntrospector()
	_, err := indexdef.Fields("embedding").Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))

	_, err = indexdef.Fields("tags").Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))
}

func TestNodeBuilderRejectsUnknownField(t *testing.T) {
	in := personIntrospector()
	_, err := indexdef.Fields("ghost").Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))
}

func TestNodeBuilderRejectsEmptyFields(t *testing.T) {
	in := personIntrospector()
	_, err := indexdef.Fields().Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))
}

func TestNodeBuilderRejectsKeyCoveringOverlap(t *testing.T) {
	in := personIntrospector()
	_, err := indexdef.Fields("name").CoveringFields("name").Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))
}

func TestNodeBuilderRejectsDuplicateKeyFields(t *testing.T) {
	in := personIntrospector()
	_, err := indexdef.Fields("name", "name").Build("Person", in)
	require.Error(t, err)
	assert.True(t, typegraph.IsIndexDefinitionError(err))
}

func TestNodeBuilderDefaultNameStableAndDeterministic(t *testing.T) {
	in := personIntrospector()
	a, err := indexdef.Fields("name", "age").Unique().Build("Person", in)
	require.NoError(t, err)
	b, err := indexdef.Fields("name", "age").Unique().Build("Person", in)
	require.NoError(t, err)
	assert.Equal(t, a.Name, b.Name)

	c, err := indexdef.Fields("age", "name").Unique().Build("Person", in)
	require.NoError(t, err)
	assert.NotEqual(t, a.Name, c.Name)
}

func TestEdgeBuilderWithDirection(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.EdgeFields("since").Direction(schema.DirectionOut).Build("FriendOf", in)
	require.NoError(t, err)
	assert.Equal(t, schema.DirectionOut, idx.Direction)
	assert.Equal(t, valuetype.Date, idx.FieldValueTypes[0])
}

func TestCompileNodeKeyExpressions(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.Fields("name").CoveringFields("age").Build("Person", in)
	require.NoError(t, err)

	adapter := postgres.New(true)
	exprs, err := indexdef.CompileNodeKeyExpressions(idx, adapter)
	require.NoError(t, err)
	require.Len(t, exprs, 4) // graph_id, kind scope cols + name + age
	assert.Contains(t, exprs[0].SQL, "graph_id")
	assert.Contains(t, exprs[1].SQL, "kind")
	assert.Contains(t, exprs[2].SQL, "#>>")
	assert.Contains(t, exprs[3].SQL, "::numeric")
}

func TestCompileEdgeKeyExpressionsIncludesDirectionColumn(t *testing.T) {
	in := personIntrospector()
	idx, err := indexdef.EdgeFields("since").Direction(schema.DirectionOut).Build("FriendOf", in)
	require.NoError(t, err)

	adapter := postgres.New(true)
	exprs, err := indexdef.CompileEdgeKeyExpressions(idx, adapter)
	require.NoError(t, err)
	require.Len(t, exprs, 4) // graph_id, kind, from_id + since
	assert.Contains(t, exprs[2].SQL, "from_id")
}

func TestVectorIndexNaming(t *testing.T) {
	ptr, err := jsonpointer.Parse("/embedding")
	require.NoError(t, err)

	vi := indexdef.NewVectorIndex("g1", "Person", ptr, "")
	assert.Equal(t, "cosine", vi.Metric)
	assert.Contains(t, vi.Name, "idx_emb_g1_person_embedding_cosine")
}
