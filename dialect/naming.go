package dialect

import "github.com/go-openapi/inflect"

// TableNameForKind derives the physical table name for a node/edge kind,
// the same convention ent-family codegen uses: underscore the kind name,
// then pluralize it ("Person" -> "people", "OrderItem" -> "order_items").
func TableNameForKind(kind string) string {
	return inflect.Pluralize(inflect.Underscore(kind))
}
