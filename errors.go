// Package typegraph is the query-compilation core: a portable query layer
// over a typed property-graph stored in a relational database. This file
// defines the error taxonomy every compilation stage reports through.
package typegraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions checked with errors.Is.
var (
	// ErrSchemaResolution is returned when a kind, field, or JSON-pointer
	// path cannot be resolved against the schema introspector.
	ErrSchemaResolution = errors.New("typegraph: schema resolution failed")

	// ErrUnsupportedPredicate is returned when a predicate is well-formed
	// but the target dialect cannot fulfill it.
	ErrUnsupportedPredicate = errors.New("typegraph: predicate unsupported by dialect")

	// ErrUnsupportedLiteral is returned when a literal value cannot be
	// coerced to the expected field type.
	ErrUnsupportedLiteral = errors.New("typegraph: literal value unsupported")

	// ErrCompilerInvariant is returned when a condition a builder or prior
	// pass was expected to rule out by construction is reached anyway.
	ErrCompilerInvariant = errors.New("typegraph: compiler invariant violated")

	// ErrIndexDefinition is returned when an index definition fails
	// normalization or validation.
	ErrIndexDefinition = errors.New("typegraph: invalid index definition")

	// ErrDialectCapability is returned when a request names a capability
	// the dialect adapter does not implement.
	ErrDialectCapability = errors.New("typegraph: dialect capability missing")
)

// SchemaResolutionError represents a failure to resolve a kind, field, or
// JSON-pointer path against the schema introspector.
type SchemaResolutionError struct {
	Kind    string
	Field   string
	Pointer string
	Reason  string
}

// Error returns the error string.
func (e *SchemaResolutionError) Error() string {
	switch {
	case e.Pointer != "":
		return fmt.Sprintf("typegraph: schema resolution: kind %q pointer %q: %s", e.Kind, e.Pointer, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("typegraph: schema resolution: kind %q field %q: %s", e.Kind, e.Field, e.Reason)
	default:
		return fmt.Sprintf("typegraph: schema resolution: kind %q: %s", e.Kind, e.Reason)
	}
}

// Is reports whether the target error matches SchemaResolutionError.
func (e *SchemaResolutionError) Is(err error) bool {
	return err == ErrSchemaResolution
}

// NewSchemaResolutionError returns a new SchemaResolutionError.
func NewSchemaResolutionError(kind, field, pointer, reason string) *SchemaResolutionError {
	return &SchemaResolutionError{Kind: kind, Field: field, Pointer: pointer, Reason: reason}
}

// IsSchemaResolutionError returns true if the error is a SchemaResolutionError.
func IsSchemaResolutionError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaResolutionError
	return errors.As(err, &e) || errors.Is(err, ErrSchemaResolution)
}

// UnsupportedPredicateError represents a predicate the target dialect
// cannot fulfill, e.g. a vector predicate on a dialect without vector
// support.
type UnsupportedPredicateError struct {
	Operator string
	Dialect  string
	Reason   string
}

// Error returns the error string.
func (e *UnsupportedPredicateError) Error() string {
	return fmt.Sprintf("typegraph: unsupported predicate %q on dialect %q: %s", e.Operator, e.Dialect, e.Reason)
}

// Is reports whether the target error matches UnsupportedPredicateError.
func (e *UnsupportedPredicateError) Is(err error) bool {
	return err == ErrUnsupportedPredicate
}

// NewUnsupportedPredicateError returns a new UnsupportedPredicateError.
func NewUnsupportedPredicateError(operator, dialect, reason string) *UnsupportedPredicateError {
	return &UnsupportedPredicateError{Operator: operator, Dialect: dialect, Reason: reason}
}

// IsUnsupportedPredicateError returns true if the error is an UnsupportedPredicateError.
func IsUnsupportedPredicateError(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedPredicateError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedPredicate)
}

// UnsupportedLiteralError represents a value the predicate builder cannot
// coerce to a literal of the expected field type.
type UnsupportedLiteralError struct {
	Field     string
	ValueType string
	GoType    string
}

// Error returns the error string.
func (e *UnsupportedLiteralError) Error() string {
	return fmt.Sprintf("typegraph: unsupported literal for field %q (expected %s, got %s)", e.Field, e.ValueType, e.GoType)
}

// Is reports whether the target error matches UnsupportedLiteralError.
func (e *UnsupportedLiteralError) Is(err error) bool {
	return err == ErrUnsupportedLiteral
}

// NewUnsupportedLiteralError returns a new UnsupportedLiteralError.
func NewUnsupportedLiteralError(field, valueType, goType string) *UnsupportedLiteralError {
	return &UnsupportedLiteralError{Field: field, ValueType: valueType, GoType: goType}
}

// IsUnsupportedLiteralError returns true if the error is an UnsupportedLiteralError.
func IsUnsupportedLiteralError(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedLiteralError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedLiteral)
}

// CompilerInvariantError indicates a condition a builder or an earlier
// compiler pass was expected to rule out by construction was reached
// anyway.
type CompilerInvariantError struct {
	Invariant string
	Detail    string
}

// Error returns the error string.
func (e *CompilerInvariantError) Error() string {
	return fmt.Sprintf("typegraph: compiler invariant %q violated: %s", e.Invariant, e.Detail)
}

// Is reports whether the target error matches CompilerInvariantError.
func (e *CompilerInvariantError) Is(err error) bool {
	return err == ErrCompilerInvariant
}

// NewCompilerInvariantError returns a new CompilerInvariantError.
func NewCompilerInvariantError(invariant, detail string) *CompilerInvariantError {
	return &CompilerInvariantError{Invariant: invariant, Detail: detail}
}

// IsCompilerInvariantError returns true if the error is a CompilerInvariantError.
func IsCompilerInvariantError(err error) bool {
	if err == nil {
		return false
	}
	var e *CompilerInvariantError
	return errors.As(err, &e) || errors.Is(err, ErrCompilerInvariant)
}

// IndexDefinitionError represents an index-normalization or validation
// failure, precisely locating the offending kind, field, or pointer.
type IndexDefinitionError struct {
	Kind    string
	Field   string
	Pointer string
	Reason  string
}

// Error returns the error string.
func (e *IndexDefinitionError) Error() string {
	switch {
	case e.Pointer != "":
		return fmt.Sprintf("typegraph: index definition: kind %q pointer %q: %s", e.Kind, e.Pointer, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("typegraph: index definition: kind %q field %q: %s", e.Kind, e.Field, e.Reason)
	default:
		return fmt.Sprintf("typegraph: index definition: kind %q: %s", e.Kind, e.Reason)
	}
}

// Is reports whether the target error matches IndexDefinitionError.
func (e *IndexDefinitionError) Is(err error) bool {
	return err == ErrIndexDefinition
}

// NewIndexDefinitionError returns a new IndexDefinitionError.
func NewIndexDefinitionError(kind, field, pointer, reason string) *IndexDefinitionError {
	return &IndexDefinitionError{Kind: kind, Field: field, Pointer: pointer, Reason: reason}
}

// IsIndexDefinitionError returns true if the error is an IndexDefinitionError.
func IsIndexDefinitionError(err error) bool {
	if err == nil {
		return false
	}
	var e *IndexDefinitionError
	return errors.As(err, &e) || errors.Is(err, ErrIndexDefinition)
}

// DialectCapabilityError represents a request naming a capability the
// dialect adapter does not implement, distinct from
// UnsupportedPredicateError in that it names a capability flag rather than
// a specific predicate instance.
type DialectCapabilityError struct {
	Dialect    string
	Capability string
}

// Error returns the error string.
func (e *DialectCapabilityError) Error() string {
	return fmt.Sprintf("typegraph: dialect %q lacks capability %q", e.Dialect, e.Capability)
}

// Is reports whether the target error matches DialectCapabilityError.
func (e *DialectCapabilityError) Is(err error) bool {
	return err == ErrDialectCapability
}

// NewDialectCapabilityError returns a new DialectCapabilityError.
func NewDialectCapabilityError(dialect, capability string) *DialectCapabilityError {
	return &DialectCapabilityError{Dialect: dialect, Capability: capability}
}

// IsDialectCapabilityError returns true if the error is a DialectCapabilityError.
func IsDialectCapabilityError(err error) bool {
	if err == nil {
		return false
	}
	var e *DialectCapabilityError
	return errors.As(err, &e) || errors.Is(err, ErrDialectCapability)
}
