package predicate

import (
	"math"

	typegraph "github.com/nicia-ai/typegraph"
)

// ExistsOf wraps sub as an existence check, optionally negated.
func ExistsOf(sub Subquery, negated bool) Builder {
	return New(&Exists{Subquery: sub, Negated: negated})
}

// InSubqueryOf compares field against sub's single projected column.
func InSubqueryOf(field FieldRef, sub Subquery, negated bool) Builder {
	return New(&InSubquery{Field: field, Subquery: sub, Negated: negated})
}

// AggregateCompare builds an aggregate_comparison for use in HAVING.
func AggregateCompare(op ComparisonOp, agg AggregateRef, value Literal) Builder {
	return New(&AggregateComparison{Op: op, Aggregate: agg, Value: value})
}

// VectorSimilarityOf validates and builds a vector_similarity predicate.
// Finiteness of the embedding is validated synchronously, per §5, before
// any SQL emission; limit must be positive.
func VectorSimilarityOf(field FieldRef, queryEmbedding []float64, metric VectorMetric, limit int, minScore *float64) (Builder, error) {
	for _, v := range queryEmbedding {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Builder{}, typegraph.NewUnsupportedLiteralError(field.fieldNameForVector(), "embedding", "non-finite component")
		}
	}
	if limit <= 0 {
		return Builder{}, typegraph.NewCompilerInvariantError("vector_similarity.limit", "limit must be positive")
	}
	return New(&VectorSimilarity{
		Field:          field,
		QueryEmbedding: queryEmbedding,
		Metric:         metric,
		Limit:          limit,
		MinScore:       minScore,
	}), nil
}

func (f FieldRef) fieldNameForVector() string {
	if len(f.Path) > 0 {
		return f.Alias + "." + f.Path[len(f.Path)-1]
	}
	return f.Alias
}
