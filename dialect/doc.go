// Package dialect defines the Adapter interface (§4.3) that abstracts the
// SQL text a compiled query needs from its target database: JSON
// extraction and casts, string matching, recursive-path accumulation,
// identifier/value formatting, and vector distance. Concrete adapters live
// in the postgres and sqlite subpackages.
//
// # Supported dialects
//
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// Adapters are immutable, process-scoped values (§3 lifecycles) safe to
// share across concurrent compilations (§5).
package dialect

// Name identifies a supported dialect.
type Name string

const (
	Postgres Name = "postgres"
	SQLite   Name = "sqlite"
)
