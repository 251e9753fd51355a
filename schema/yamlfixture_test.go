package schema_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nicia-ai/typegraph/schema"
	"github.com/nicia-ai/typegraph/valuetype"
)

// yamlFieldFixture mirrors schema.FieldTypeInfo's shape in a form that
// decodes directly from YAML; loadFixtureSchema converts it into the
// map[kind]map[field]*schema.FieldTypeInfo shape schema.New expects.
type yamlFieldFixture struct {
	Type        string                       `yaml:"type"`
	ElementType string                       `yaml:"elementType"`
	Fields      map[string]*yamlFieldFixture `yaml:"fields"`
}

type yamlSchemaFixture struct {
	Nodes map[string]map[string]*yamlFieldFixture `yaml:"nodes"`
	Edges map[string]map[string]*yamlFieldFixture `yaml:"edges"`
}

func (f *yamlFieldFixture) toFieldTypeInfo() *schema.FieldTypeInfo {
	if f == nil {
		return nil
	}
	fti := &schema.FieldTypeInfo{
		Type:        valuetype.ValueType(f.Type),
		ElementType: valuetype.ValueType(f.ElementType),
	}
	if len(f.Fields) > 0 {
		fti.Fields = make(map[string]*schema.FieldTypeInfo, len(f.Fields))
		for name, child := range f.Fields {
			fti.Fields[name] = child.toFieldTypeInfo()
		}
	}
	return fti
}

// loadFixtureSchema reads a YAML schema fixture from
// schema/testdata/<name>.yaml and returns the node and edge field maps
// schema.New expects, mirroring how the teacher's compiler/load package
// reads package metadata from an external file rather than hand-writing
// Go literals in every test.
func loadFixtureSchema(t *testing.T, name string) (nodes, edges map[string]map[string]*schema.FieldTypeInfo) {
	t.Helper()
	raw, err := os.ReadFile("testdata/" + name + ".yaml")
	require.NoError(t, err)

	var fixture yamlSchemaFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixture))

	nodes = make(map[string]map[string]*schema.FieldTypeInfo, len(fixture.Nodes))
	for kind, fields := range fixture.Nodes {
		nodes[kind] = make(map[string]*schema.FieldTypeInfo, len(fields))
		for name, f := range fields {
			nodes[kind][name] = f.toFieldTypeInfo()
		}
	}
	edges = make(map[string]map[string]*schema.FieldTypeInfo, len(fixture.Edges))
	for kind, fields := range fixture.Edges {
		edges[kind] = make(map[string]*schema.FieldTypeInfo, len(fields))
		for name, f := range fields {
			edges[kind][name] = f.toFieldTypeInfo()
		}
	}
	return nodes, edges
}

func TestLoadFixtureSchemaResolvesNestedFields(t *testing.T) {
	nodes, edges := loadFixtureSchema(t, "person")
	in := schema.New(nodes, edges)

	fti := in.GetFieldTypeInfo("Person", "address")
	require.NotNil(t, fti)
	require.NotNil(t, fti.Fields["geo"])
	require.NotNil(t, fti.Fields["geo"].Fields["lat"])
	require.Equal(t, valuetype.Number, fti.Fields["geo"].Fields["lat"].Type)

	edgeFti := in.GetEdgeFieldTypeInfo("FriendOf", "since")
	require.NotNil(t, edgeFti)
	require.Equal(t, valuetype.Date, edgeFti.Type)
}
