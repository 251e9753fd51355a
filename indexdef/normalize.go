package indexdef

import (
	"strings"

	typegraph "github.com/nicia-ai/typegraph"
	"github.com/nicia-ai/typegraph/ast"
	"github.com/nicia-ai/typegraph/jsonpointer"
	"github.com/nicia-ai/typegraph/naming"
	"github.com/nicia-ai/typegraph/schema"
	"github.com/nicia-ai/typegraph/valuetype"
)

// resolvedField is a field path after it has been split into its top-level
// schema field and relative pointer, and resolved to a ValueType.
type resolvedField struct {
	topField string
	rel      jsonpointer.Pointer
	full     jsonpointer.Pointer
	typ      valuetype.ValueType
}

// splitFieldPath turns "address/city" into topField "address" and the
// relative pointer "/city"; a bare "name" yields topField "name" and the
// root pointer.
func splitFieldPath(path string) (topField string, rel jsonpointer.Pointer, err error) {
	segments := strings.Split(path, "/")
	topField = segments[0]
	rel, err = jsonpointer.Build(segments[1:])
	return topField, rel, err
}

func fullPointer(topField string, rel jsonpointer.Pointer) (jsonpointer.Pointer, error) {
	head, err := jsonpointer.Build([]string{topField})
	if err != nil {
		return jsonpointer.Pointer{}, err
	}
	return jsonpointer.Join(head, rel)
}

// resolveFields normalizes and validates a list of raw field paths: each
// must resolve against the introspector and must not be of an unindexable
// ValueType (§4.6 step 2-3).
func resolveFields(kind string, paths []string, resolve func(topField string, rel jsonpointer.Pointer) (*schema.FieldTypeInfo, error)) ([]resolvedField, error) {
	out := make([]resolvedField, 0, len(paths))
	for _, path := range paths {
		topField, rel, err := splitFieldPath(path)
		if err != nil {
			return nil, typegraph.NewIndexDefinitionError(kind, path, "", err.Error())
		}
		info, err := resolve(topField, rel)
		if err != nil {
			return nil, typegraph.NewIndexDefinitionError(kind, path, rel.String(), err.Error())
		}
		if valuetype.Unindexable(info.Type) {
			return nil, typegraph.NewIndexDefinitionError(kind, path, rel.String(), "value type "+info.Type.String()+" cannot back a props-key index")
		}
		full, err := fullPointer(topField, rel)
		if err != nil {
			return nil, typegraph.NewIndexDefinitionError(kind, path, "", err.Error())
		}
		out = append(out, resolvedField{topField: topField, rel: rel, full: full, typ: info.Type})
	}
	return out, nil
}

// checkOverlap rejects duplicate key fields and any field appearing in both
// the key and covering lists, compared on the pointer's normalized string
// form (§9 open question: normalized, not raw input).
func checkOverlap(kind string, key, covering []resolvedField) error {
	seen := make(map[string]struct{}, len(key))
	for _, f := range key {
		n := f.full.Normalized()
		if _, dup := seen[n]; dup {
			return typegraph.NewIndexDefinitionError(kind, "", f.full.String(), "duplicate key field")
		}
		seen[n] = struct{}{}
	}
	for _, f := range covering {
		n := f.full.Normalized()
		if _, dup := seen[n]; dup {
			return typegraph.NewIndexDefinitionError(kind, "", f.full.String(), "field present in both key and covering lists")
		}
	}
	return nil
}

func pointers(fields []resolvedField) []jsonpointer.Pointer {
	out := make([]jsonpointer.Pointer, len(fields))
	for i, f := range fields {
		out[i] = f.full
	}
	return out
}

func types(fields []resolvedField) []valuetype.ValueType {
	out := make([]valuetype.ValueType, len(fields))
	for i, f := range fields {
		out[i] = f.typ
	}
	return out
}

func pointerStrings(fields []resolvedField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.full.Normalized()
	}
	return out
}

// Build normalizes b into a validated NodeIndex for kind, resolving each
// field against in (§4.6).
func (b *NodeBuilder) Build(kind string, in *schema.Introspector) (*ast.NodeIndex, error) {
	if len(b.fields) == 0 {
		return nil, typegraph.NewIndexDefinitionError(kind, "", "", "a node index requires at least one key field")
	}
	scope := b.scope
	if scope == "" {
		scope = schema.ScopeGraphAndKind
	}

	resolve := func(topField string, rel jsonpointer.Pointer) (*schema.FieldTypeInfo, error) {
		return in.ResolveNodeField(kind, topField, rel)
	}

	key, err := resolveFields(kind, b.fields, resolve)
	if err != nil {
		return nil, err
	}
	covering, err := resolveFields(kind, b.covering, resolve)
	if err != nil {
		return nil, err
	}
	if err := checkOverlap(kind, key, covering); err != nil {
		return nil, err
	}

	name := b.name
	if name == "" {
		name = naming.DefaultIndexName(naming.IndexSpec{
			Kind:     kind,
			Unique:   b.unique,
			Scope:    string(scope),
			Fields:   pointerStrings(key),
			Covering: pointerStrings(covering),
		})
	}

	return &ast.NodeIndex{
		Kind:                    kind,
		KindName:                kind,
		Fields:                  pointers(key),
		FieldValueTypes:         types(key),
		CoveringFields:          pointers(covering),
		CoveringFieldValueTypes: types(covering),
		Unique:                  b.unique,
		Scope:                   scope,
		Where:                   b.where,
		Name:                    name,
	}, nil
}

// Build normalizes b into a validated EdgeIndex for kind.
func (b *EdgeBuilder) Build(kind string, in *schema.Introspector) (*ast.EdgeIndex, error) {
	if len(b.fields) == 0 {
		return nil, typegraph.NewIndexDefinitionError(kind, "", "", "an edge index requires at least one key field")
	}
	scope := b.scope
	if scope == "" {
		scope = schema.ScopeGraphAndKind
	}
	direction := b.direction
	if direction == "" {
		direction = schema.DirectionNone
	}

	resolve := func(topField string, rel jsonpointer.Pointer) (*schema.FieldTypeInfo, error) {
		return in.ResolveEdgeField(kind, topField, rel)
	}

	key, err := resolveFields(kind, b.fields, resolve)
	if err != nil {
		return nil, err
	}
	covering, err := resolveFields(kind, b.covering, resolve)
	if err != nil {
		return nil, err
	}
	if err := checkOverlap(kind, key, covering); err != nil {
		return nil, err
	}

	name := b.name
	if name == "" {
		name = naming.DefaultIndexName(naming.IndexSpec{
			Kind:      kind,
			Unique:    b.unique,
			Scope:     string(scope),
			Direction: string(direction),
			Fields:    pointerStrings(key),
			Covering:  pointerStrings(covering),
		})
	}

	return &ast.EdgeIndex{
		Kind:                    kind,
		KindName:                kind,
		Fields:                  pointers(key),
		FieldValueTypes:         types(key),
		CoveringFields:          pointers(covering),
		CoveringFieldValueTypes: types(covering),
		Unique:                  b.unique,
		Scope:                   scope,
		Direction:               direction,
		Where:                   b.where,
		Name:                    name,
	}, nil
}
