package openapi

import (
	"fmt"
	"reflect"

	"github.com/Gobd/datautil"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// elemTyper is implemented by [datautil.OneOrMany].
type elemTyper interface {
	ElemType() reflect.Type
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value.
// Fields of type [datautil.OneOrMany] are documented as a oneOf of the
// element schema and an array of it.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(oneOrManyCustomizer))
	return g.NewSchemaRefForValue(value, nil)
}

// OneOrManySchema returns a schema accepting either elem or an array of elem.
func OneOrManySchema(elem *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewOneOfSchema(elem, openapi3.NewArraySchema().WithItems(elem))
}

// PipelineConfigSchema documents [datautil.PipelineConfig], listing the known
// transform names as the enum of its ops items.
func PipelineConfigSchema() (*openapi3.SchemaRef, error) {
	ref, err := NewSchemaRefForValue(datautil.PipelineConfig{})
	if err != nil {
		return nil, err
	}
	ops, ok := ref.Value.Properties["ops"]
	if !ok || ops.Value == nil || ops.Value.Items == nil || ops.Value.Items.Value == nil {
		return nil, fmt.Errorf("pipeline config schema has no ops items")
	}
	ops.Value.Description = "transforms applied in order"
	ops.Value.MinItems = 1
	for _, name := range datautil.OpNames() {
		ops.Value.Items.Value.Enum = append(ops.Value.Items.Value.Enum, name)
	}
	return ref, nil
}

func oneOrManyCustomizer(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	if t.Kind() != reflect.Struct {
		return nil
	}
	et, ok := reflect.Zero(t).Interface().(elemTyper)
	if !ok {
		return nil
	}
	elemType := et.ElemType()
	if elemType.Kind() == reflect.Interface {
		*schema = *OneOrManySchema(openapi3.NewSchema())
		return nil
	}
	elem, err := NewSchemaRefForValue(reflect.Zero(elemType).Interface())
	if err != nil {
		return err
	}
	*schema = *OneOrManySchema(elem.Value)
	return nil
}
