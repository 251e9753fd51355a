package compiler

// limitResolutionPassExecute implements §4.8's limit-resolution pass: when
// a vector predicate is present, the effective limit is
// min(ast.limit ?? vec.limit, vec.limit); otherwise it is the AST's own
// limit, possibly none.
func limitResolutionPassExecute(state State) (*int, error) {
	if state.VectorPredicate == nil {
		return state.Query.Limit, nil
	}
	effective := state.VectorPredicate.Limit
	if state.Query.Limit != nil && *state.Query.Limit < effective {
		effective = *state.Query.Limit
	}
	return &effective, nil
}

var limitResolutionPass = Pass[State, *int]{
	Name:    "limit_resolution",
	Execute: limitResolutionPassExecute,
	Update: func(state State, output *int) State {
		state.EffectiveLimit = output
		return state
	},
}
