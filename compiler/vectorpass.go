package compiler

import (
	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/dialect"
	"github.com/nicia-ai/typegraph/predicate"
)

// collectVectorPredicates walks p, gathering every vector_similarity leaf.
// A vector_similarity occurring under or/not is an error: the spec allows
// it only as a top-level (and-combined) predicate (§4.8).
func collectVectorPredicates(p predicate.P) ([]*predicate.VectorSimilarity, error) {
	var found []*predicate.VectorSimilarity
	var walk func(p predicate.P, underOrNot bool) error
	walk = func(p predicate.P, underOrNot bool) error {
		switch n := p.(type) {
		case nil:
			return nil
		case *predicate.VectorSimilarity:
			if underOrNot {
				return typegraph.NewUnsupportedPredicateError(
					"vector_similarity", "", "vector_similarity may not occur under or/not",
				)
			}
			found = append(found, n)
		case *predicate.And:
			for _, c := range n.Predicates {
				if err := walk(c, underOrNot); err != nil {
					return err
				}
			}
		case *predicate.Or:
			for _, c := range n.Predicates {
				if err := walk(c, true); err != nil {
					return err
				}
			}
		case *predicate.Not:
			return walk(n.Predicate, true)
		}
		return nil
	}
	if p != nil {
		if err := walk(p, false); err != nil {
			return nil, err
		}
	}
	return found, nil
}

func vectorMetricToDialect(m predicate.VectorMetric) dialect.VectorMetric {
	return dialect.VectorMetric(m)
}

// vectorPredicatePassExecute implements §4.8's vector-predicate pass.
func vectorPredicatePassExecute(state State) (*predicate.VectorSimilarity, error) {
	var all []*predicate.VectorSimilarity
	for _, binding := range state.Query.Predicates {
		found, err := collectVectorPredicates(binding.Expression)
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}
	if len(all) == 0 {
		return nil, nil
	}
	if len(all) > 1 {
		return nil, typegraph.NewUnsupportedPredicateError("vector_similarity", string(state.Dialect.Name()), "multiple vector predicates")
	}
	vec := all[0]

	caps := state.Dialect.Capabilities()
	if caps.VectorPredicateStrategy == dialect.VectorUnsupported || !state.Dialect.SupportsVectors() {
		return nil, typegraph.NewDialectCapabilityError(string(state.Dialect.Name()), "vectorPredicateStrategy")
	}
	if !caps.SupportsVectorMetric(vectorMetricToDialect(vec.Metric)) {
		return nil, typegraph.NewUnsupportedPredicateError(
			"vector_similarity", string(state.Dialect.Name()), "metric "+string(vec.Metric)+" is not supported",
		)
	}
	if vec.Limit <= 0 {
		return nil, typegraph.NewCompilerInvariantError("vector-predicate pass", "limit must be finite and positive")
	}
	if vec.MinScore != nil {
		score := *vec.MinScore
		if score != score || score > maxFinite || score < -maxFinite {
			return nil, typegraph.NewUnsupportedLiteralError("minScore", "number", "non-finite")
		}
		if vec.Metric == predicate.MetricCosine && (score < -1 || score > 1) {
			return nil, typegraph.NewCompilerInvariantError("vector-predicate pass", "cosine minScore must be within [-1, 1]")
		}
	}
	return vec, nil
}

const maxFinite = 1.7976931348623157e+308

var vectorPredicatePass = Pass[State, *predicate.VectorSimilarity]{
	Name:    "vector_predicate",
	Execute: vectorPredicatePassExecute,
	Update: func(state State, output *predicate.VectorSimilarity) State {
		state.VectorPredicate = output
		return state
	},
}
