package predicate

import (
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/valuetype"
)

// Field wraps a FieldRef and exposes the operator methods §4.4 calls for,
// producing the concrete predicate shape appropriate to the operator and
// coercing each operand through CoerceLiteral against the field's declared
// ValueType. This generalizes the teacher's generic StringField[P]/
// IntField[P] family (constrained to a single Go type per field, since
// that corpus never needed runtime coercion) to fields whose ValueType is
// only known once the schema introspector has resolved them.
type Field struct {
	Ref FieldRef
}

// On returns a Field builder for ref.
func On(ref FieldRef) Field { return Field{Ref: ref} }

func (f Field) coerce(value any) (Literal, error) {
	return CoerceLiteral(f.fieldName(), value, f.Ref.ValueType, "")
}

func (f Field) coerceAs(value any, preferred valuetype.ValueType) (Literal, error) {
	return CoerceLiteral(f.fieldName(), value, f.Ref.ValueType, preferred)
}

func (f Field) fieldName() string {
	if f.Ref.IsPropsField() {
		return f.Ref.Alias + "." + f.Ref.JSONPointer.String()
	}
	if len(f.Ref.Path) > 0 {
		return f.Ref.Alias + "." + f.Ref.Path[len(f.Ref.Path)-1]
	}
	return f.Ref.Alias
}

// EQ builds an eq Comparison.
func (f Field) EQ(value any) (Builder, error) {
	lit, err := f.coerce(value)
	if err != nil {
		return Builder{}, err
	}
	return New(&Comparison{Op: OpEQ, Field: f.Ref, Right: lit}), nil
}

// NEQ builds a neq Comparison.
func (f Field) NEQ(value any) (Builder, error) {
	lit, err := f.coerce(value)
	if err != nil {
		return Builder{}, err
	}
	return New(&Comparison{Op: OpNEQ, Field: f.Ref, Right: lit}), nil
}

// GT builds a gt Comparison.
func (f Field) GT(value any) (Builder, error) { return f.compare(OpGT, value) }

// GTE builds a gte Comparison.
func (f Field) GTE(value any) (Builder, error) { return f.compare(OpGTE, value) }

// LT builds a lt Comparison.
func (f Field) LT(value any) (Builder, error) { return f.compare(OpLT, value) }

// LTE builds a lte Comparison.
func (f Field) LTE(value any) (Builder, error) { return f.compare(OpLTE, value) }

func (f Field) compare(op ComparisonOp, value any) (Builder, error) {
	lit, err := f.coerce(value)
	if err != nil {
		return Builder{}, err
	}
	return New(&Comparison{Op: op, Field: f.Ref, Right: lit}), nil
}

// In builds an in Comparison over a list of values.
func (f Field) In(values ...any) (Builder, error) {
	return f.listComparison(OpIn, values)
}

// NotIn builds a notIn Comparison over a list of values.
func (f Field) NotIn(values ...any) (Builder, error) {
	return f.listComparison(OpNotIn, values)
}

func (f Field) listComparison(op ComparisonOp, values []any) (Builder, error) {
	lits, err := CoerceLiteralList(f.fieldName(), values, f.Ref.ValueType)
	if err != nil {
		return Builder{}, err
	}
	return New(&Comparison{Op: op, Field: f.Ref, Right: lits}), nil
}

// Between builds a between predicate.
func (f Field) Between(lower, upper any) (Builder, error) {
	lo, err := f.coerce(lower)
	if err != nil {
		return Builder{}, err
	}
	hi, err := f.coerce(upper)
	if err != nil {
		return Builder{}, err
	}
	return New(&Between{Field: f.Ref, Lower: lo, Upper: hi}), nil
}

// IsNull builds an isNull null_check.
func (f Field) IsNull() Builder {
	return New(&NullCheck{Op: IsNull, Field: f.Ref})
}

// IsNotNull builds an isNotNull null_check.
func (f Field) IsNotNull() Builder {
	return New(&NullCheck{Op: IsNotNull, Field: f.Ref})
}

// Contains builds a contains string_op.
func (f Field) Contains(pattern string) Builder {
	return New(&StringOp{Op: StringContains, Field: f.Ref, Pattern: pattern})
}

// StartsWith builds a startsWith string_op.
func (f Field) StartsWith(pattern string) Builder {
	return New(&StringOp{Op: StringStartsWith, Field: f.Ref, Pattern: pattern})
}

// EndsWith builds an endsWith string_op.
func (f Field) EndsWith(pattern string) Builder {
	return New(&StringOp{Op: StringEndsWith, Field: f.Ref, Pattern: pattern})
}

// Like builds a like string_op.
func (f Field) Like(pattern string) Builder {
	return New(&StringOp{Op: StringLike, Field: f.Ref, Pattern: pattern})
}

// ILike builds an ilike string_op.
func (f Field) ILike(pattern string) Builder {
	return New(&StringOp{Op: StringILike, Field: f.Ref, Pattern: pattern})
}

// ArrayContains builds an array_op testing whether the array contains a
// single value.
func (f Field) ArrayContains(value any) (Builder, error) {
	lit, err := CoerceLiteral(f.fieldName(), value, f.Ref.ElementType, "")
	if err != nil {
		return Builder{}, err
	}
	return New(&ArrayOp{Op: ArrayContains, Field: f.Ref, Values: []Literal{lit}}), nil
}

// ArrayContainsAll builds a containsAll array_op.
func (f Field) ArrayContainsAll(values ...any) (Builder, error) {
	return f.arrayOp(ArrayContainsAll, values)
}

// ArrayContainsAny builds a containsAny array_op.
func (f Field) ArrayContainsAny(values ...any) (Builder, error) {
	return f.arrayOp(ArrayContainsAny, values)
}

func (f Field) arrayOp(op ArrayOperator, values []any) (Builder, error) {
	lits, err := CoerceLiteralList(f.fieldName(), values, f.Ref.ElementType)
	if err != nil {
		return Builder{}, err
	}
	return New(&ArrayOp{Op: op, Field: f.Ref, Values: lits}), nil
}

// ArrayIsEmpty builds an isEmpty array_op.
func (f Field) ArrayIsEmpty() Builder {
	return New(&ArrayOp{Op: ArrayIsEmpty, Field: f.Ref})
}

// ArrayIsNotEmpty builds an isNotEmpty array_op.
func (f Field) ArrayIsNotEmpty() Builder {
	return New(&ArrayOp{Op: ArrayIsNotEmpty, Field: f.Ref})
}

// ArrayLength builds a length-comparison array_op (lengthEq/Gt/Gte/Lt/Lte).
func (f Field) ArrayLength(op ArrayOperator, n int) Builder {
	return New(&ArrayOp{Op: op, Field: f.Ref, Length: n})
}

// HasKey builds a hasKey object_op testing for a direct child key.
func (f Field) HasKey(key string) (Builder, error) {
	ptr, err := jsonpointer.Build([]string{key})
	if err != nil {
		return Builder{}, err
	}
	return New(&ObjectOp{Op: ObjectHasKey, Field: f.Ref, Pointer: ptr}), nil
}

// HasPath builds a hasPath object_op testing for a nested pointer's
// presence.
func (f Field) HasPath(ptr jsonpointer.Pointer) Builder {
	return New(&ObjectOp{Op: ObjectHasPath, Field: f.Ref, Pointer: ptr})
}

// PathEquals builds a pathEquals object_op comparing the value at ptr,
// coerced against valueType (defaulting to the field's ElementType when
// valueType is empty, since nested-object field types are rarely known
// statically from the FieldRef alone).
func (f Field) PathEquals(ptr jsonpointer.Pointer, value any, valueType valuetype.ValueType) (Builder, error) {
	want := valueType
	if want == "" {
		want = f.Ref.ElementType
	}
	lit, err := CoerceLiteral(f.fieldName(), value, want, "")
	if err != nil {
		return Builder{}, err
	}
	return New(&ObjectOp{Op: ObjectPathEquals, Field: f.Ref, Pointer: ptr, Value: lit, ValueType: want}), nil
}

// PathContains builds a pathContains object_op: the value at ptr, itself
// an array, contains value.
func (f Field) PathContains(ptr jsonpointer.Pointer, value any, elementType valuetype.ValueType) (Builder, error) {
	lit, err := CoerceLiteral(f.fieldName(), value, elementType, "")
	if err != nil {
		return Builder{}, err
	}
	return New(&ObjectOp{Op: ObjectPathContains, Field: f.Ref, Pointer: ptr, Value: lit, ElementType: elementType}), nil
}

// PathIsNull builds a pathIsNull object_op.
func (f Field) PathIsNull(ptr jsonpointer.Pointer) Builder {
	return New(&ObjectOp{Op: ObjectPathIsNull, Field: f.Ref, Pointer: ptr})
}

// PathIsNotNull builds a pathIsNotNull object_op.
func (f Field) PathIsNotNull(ptr jsonpointer.Pointer) Builder {
	return New(&ObjectOp{Op: ObjectPathIsNotNull, Field: f.Ref, Pointer: ptr})
}
