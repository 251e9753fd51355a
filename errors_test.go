package typegraph_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	typegraph "github.com/nicia-ai/typegraph"
)

func TestSchemaResolutionError(t *testing.T) {
	t.Run("Error with pointer", func(t *testing.T) {
		err := typegraph.NewSchemaResolutionError("Person", "", "/address/city", "unknown field")
		assert.Equal(t, `typegraph: schema resolution: kind "Person" pointer "/address/city": unknown field`, err.Error())
	})

	t.Run("Error with field", func(t *testing.T) {
		err := typegraph.NewSchemaResolutionError("Person", "age", "", "unknown field")
		assert.Equal(t, `typegraph: schema resolution: kind "Person" field "age": unknown field`, err.Error())
	})

	t.Run("Error with kind only", func(t *testing.T) {
		err := typegraph.NewSchemaResolutionError("Ghost", "", "", "unknown kind")
		assert.Equal(t, `typegraph: schema resolution: kind "Ghost": unknown kind`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := typegraph.NewSchemaResolutionError("Person", "age", "", "unknown field")
		assert.True(t, errors.Is(err, typegraph.ErrSchemaResolution))
	})

	t.Run("IsSchemaResolutionError", func(t *testing.T) {
		err := typegraph.NewSchemaResolutionError("Person", "age", "", "unknown field")
		assert.True(t, typegraph.IsSchemaResolutionError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsSchemaResolutionError(wrapped))

		assert.True(t, typegraph.IsSchemaResolutionError(typegraph.ErrSchemaResolution))
		assert.False(t, typegraph.IsSchemaResolutionError(errors.New("other error")))
		assert.False(t, typegraph.IsSchemaResolutionError(nil))
	})
}

func TestUnsupportedPredicateError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := typegraph.NewUnsupportedPredicateError("vector_similarity", "sqlite", "no vector extension loaded")
		assert.Equal(t, `typegraph: unsupported predicate "vector_similarity" on dialect "sqlite": no vector extension loaded`, err.Error())
	})

	t.Run("IsUnsupportedPredicateError", func(t *testing.T) {
		err := typegraph.NewUnsupportedPredicateError("vector_similarity", "sqlite", "no vector extension loaded")
		assert.True(t, typegraph.IsUnsupportedPredicateError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsUnsupportedPredicateError(wrapped))

		assert.False(t, typegraph.IsUnsupportedPredicateError(errors.New("other error")))
		assert.False(t, typegraph.IsUnsupportedPredicateError(nil))
	})
}

func TestUnsupportedLiteralError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := typegraph.NewUnsupportedLiteralError("age", "number", "string")
		assert.Equal(t, `typegraph: unsupported literal for field "age" (expected number, got string)`, err.Error())
	})

	t.Run("IsUnsupportedLiteralError", func(t *testing.T) {
		err := typegraph.NewUnsupportedLiteralError("age", "number", "string")
		assert.True(t, typegraph.IsUnsupportedLiteralError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsUnsupportedLiteralError(wrapped))

		assert.False(t, typegraph.IsUnsupportedLiteralError(errors.New("other error")))
		assert.False(t, typegraph.IsUnsupportedLiteralError(nil))
	})
}

func TestCompilerInvariantError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := typegraph.NewCompilerInvariantError("key-expression-type", "reached jsonExtract fallback for array field")
		assert.Equal(t, `typegraph: compiler invariant "key-expression-type" violated: reached jsonExtract fallback for array field`, err.Error())
	})

	t.Run("IsCompilerInvariantError", func(t *testing.T) {
		err := typegraph.NewCompilerInvariantError("key-expression-type", "reached jsonExtract fallback for array field")
		assert.True(t, typegraph.IsCompilerInvariantError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsCompilerInvariantError(wrapped))

		assert.False(t, typegraph.IsCompilerInvariantError(errors.New("other error")))
		assert.False(t, typegraph.IsCompilerInvariantError(nil))
	})
}

func TestIndexDefinitionError(t *testing.T) {
	t.Run("Error with pointer", func(t *testing.T) {
		err := typegraph.NewIndexDefinitionError("Person", "", "/embedding", "embedding fields cannot be key fields")
		assert.Equal(t, `typegraph: index definition: kind "Person" pointer "/embedding": embedding fields cannot be key fields`, err.Error())
	})

	t.Run("Error with kind only", func(t *testing.T) {
		err := typegraph.NewIndexDefinitionError("Person", "", "", "duplicate index name")
		assert.Equal(t, `typegraph: index definition: kind "Person": duplicate index name`, err.Error())
	})

	t.Run("IsIndexDefinitionError", func(t *testing.T) {
		err := typegraph.NewIndexDefinitionError("Person", "", "/embedding", "embedding fields cannot be key fields")
		assert.True(t, typegraph.IsIndexDefinitionError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsIndexDefinitionError(wrapped))

		assert.False(t, typegraph.IsIndexDefinitionError(errors.New("other error")))
		assert.False(t, typegraph.IsIndexDefinitionError(nil))
	})
}

func TestDialectCapabilityError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := typegraph.NewDialectCapabilityError("sqlite", "recursive_expand")
		assert.Equal(t, `typegraph: dialect "sqlite" lacks capability "recursive_expand"`, err.Error())
	})

	t.Run("IsDialectCapabilityError", func(t *testing.T) {
		err := typegraph.NewDialectCapabilityError("sqlite", "recursive_expand")
		assert.True(t, typegraph.IsDialectCapabilityError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, typegraph.IsDialectCapabilityError(wrapped))

		assert.False(t, typegraph.IsDialectCapabilityError(errors.New("other error")))
		assert.False(t, typegraph.IsDialectCapabilityError(nil))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrSchemaResolution", func(t *testing.T) {
		assert.Error(t, typegraph.ErrSchemaResolution)
		assert.Contains(t, typegraph.ErrSchemaResolution.Error(), "schema resolution")
	})

	t.Run("ErrUnsupportedPredicate", func(t *testing.T) {
		assert.Error(t, typegraph.ErrUnsupportedPredicate)
		assert.Contains(t, typegraph.ErrUnsupportedPredicate.Error(), "predicate unsupported")
	})

	t.Run("ErrUnsupportedLiteral", func(t *testing.T) {
		assert.Error(t, typegraph.ErrUnsupportedLiteral)
		assert.Contains(t, typegraph.ErrUnsupportedLiteral.Error(), "literal")
	})

	t.Run("ErrCompilerInvariant", func(t *testing.T) {
		assert.Error(t, typegraph.ErrCompilerInvariant)
		assert.Contains(t, typegraph.ErrCompilerInvariant.Error(), "invariant")
	})

	t.Run("ErrIndexDefinition", func(t *testing.T) {
		assert.Error(t, typegraph.ErrIndexDefinition)
		assert.Contains(t, typegraph.ErrIndexDefinition.Error(), "index definition")
	})

	t.Run("ErrDialectCapability", func(t *testing.T) {
		assert.Error(t, typegraph.ErrDialectCapability)
		assert.Contains(t, typegraph.ErrDialectCapability.Error(), "capability")
	})
}
