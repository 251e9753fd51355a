// Package compiler implements the pass framework (§4.7), the semantic
// passes (§4.8), logical-plan lowering (§4.9), and subquery utilities
// (§4.10) that turn a validated ast.Query into a dialect-bound operator
// tree.
package compiler

// Pass couples a pure analysis step (Execute) with how its result folds
// back into state (Update). Passes read the full state but never mutate
// it; they communicate only through the returned output (§4.7).
type Pass[S any, O any] struct {
	Name    string
	Execute func(state S) (O, error)
	Update  func(state S, output O) S
}

// step erases a Pass's output type so heterogeneous passes can be
// sequenced by Run.
func step[S any, O any](p Pass[S, O]) func(S) (S, error) {
	return func(state S) (S, error) {
		out, err := p.Execute(state)
		if err != nil {
			return state, err
		}
		return p.Update(state, out), nil
	}
}

// Run threads state through steps in order. There is no backtracking: the
// first error stops the run and returns the state as of the failing step.
func Run[S any](state S, steps ...func(S) (S, error)) (S, error) {
	for _, s := range steps {
		var err error
		state, err = s(state)
		if err != nil {
			return state, err
		}
	}
	return state, nil
}
