package predicate

// Builder wraps an immutable predicate value and exposes the fluent
// and/or/not combinators from §4.4. Every combinator returns a new
// Builder; the receiver and argument are left untouched (Builder
// immutability law, §8).
type Builder struct {
	expr P
}

// New wraps an already-constructed predicate for further fluent
// composition.
func New(p P) Builder { return Builder{expr: p} }

// Build returns the wrapped predicate.
func (b Builder) Build() P { return b.expr }

// And combines b and other into a binary And with exactly two children,
// in argument order. It never flattens an existing And on either side.
func (b Builder) And(other Builder) Builder {
	return Builder{expr: &And{Predicates: []P{b.expr, other.expr}}}
}

// Or combines b and other into a binary Or with exactly two children, in
// argument order.
func (b Builder) Or(other Builder) Builder {
	return Builder{expr: &Or{Predicates: []P{b.expr, other.expr}}}
}

// Not wraps b in a single-child Not. Calling Not twice produces nested Not
// values rather than canceling.
func (b Builder) Not() Builder {
	return Builder{expr: &Not{Predicate: b.expr}}
}

// AndAll builds an n-ary And directly from a predicate slice, bypassing
// the binary fluent form; used by callers composing many predicates at
// once (e.g. plan lowering combining every predicate bound to one alias).
func AndAll(preds ...P) P {
	if len(preds) == 1 {
		return preds[0]
	}
	return &And{Predicates: preds}
}

// OrAll is AndAll for Or.
func OrAll(preds ...P) P {
	if len(preds) == 1 {
		return preds[0]
	}
	return &Or{Predicates: preds}
}
