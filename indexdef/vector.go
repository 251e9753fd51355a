package indexdef

import (
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/naming"
)

// VectorIndex names a dedicated vector index over an embedding-typed
// props field. Embedding fields are rejected by NodeBuilder/EdgeBuilder
// (they are Unindexable for a props-key index), so a vector index is
// defined through this separate, narrower constructor instead (§4.11).
type VectorIndex struct {
	GraphID      string
	NodeKind     string
	FieldPointer jsonpointer.Pointer
	Metric       string
	Name         string
}

// NewVectorIndex builds a VectorIndex with its name derived by the §4.11
// template. metric defaults to "cosine" when empty.
func NewVectorIndex(graphID, nodeKind string, fieldPointer jsonpointer.Pointer, metric string) VectorIndex {
	name := naming.VectorIndexName(graphID, nodeKind, fieldPointer.Normalized(), metric)
	if metric == "" {
		metric = "cosine"
	}
	return VectorIndex{
		GraphID:      graphID,
		NodeKind:     nodeKind,
		FieldPointer: fieldPointer,
		Metric:       metric,
		Name:         name,
	}
}
