package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicia-ai/typegraph/schema"
)

func TestNodeSystemTable(t *testing.T) {
	tbl := schema.NodeSystemTable()
	require.NotNil(t, tbl)
	assert.True(t, schema.HasColumn(tbl, "graph_id"))
	assert.True(t, schema.HasColumn(tbl, "version"))
	assert.False(t, schema.HasColumn(tbl, "from_id"))
}

func TestEdgeSystemTable(t *testing.T) {
	tbl := schema.EdgeSystemTable()
	require.NotNil(t, tbl)
	assert.True(t, schema.HasColumn(tbl, "from_id"))
	assert.True(t, schema.HasColumn(tbl, "to_kind"))
	assert.False(t, schema.HasColumn(tbl, "version"))
}

func TestEmbeddingColumnType(t *testing.T) {
	ct := schema.EmbeddingColumnType(1536)
	assert.Equal(t, "vector(1536)", ct.Raw)
}
