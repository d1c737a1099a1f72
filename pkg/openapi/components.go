package openapi

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/schemagen/pkg/model"
)

// RefPrefix is the JSON pointer prefix of component schema references.
const RefPrefix = "#/components/schemas/"

// Components lowers models into component schemas keyed by model id.
func Components(models []*model.Model) openapi3.Schemas {
	out := make(openapi3.Schemas, len(models))
	for _, m := range models {
		out[m.ID] = openapi3.NewSchemaRef("", ModelSchema(m))
	}
	return out
}

// Merge writes models into the document's component schemas. Models known by id only that
// the document already holds are left untouched.
func Merge(doc *openapi3.T, models []*model.Model) {
	if doc.Components == nil {
		doc.Components = &openapi3.Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = openapi3.Schemas{}
	}
	for _, m := range models {
		if _, ok := doc.Components.Schemas[m.ID]; ok && m.Origin == nil {
			continue
		}
		doc.Components.Schemas[m.ID] = openapi3.NewSchemaRef("", ModelSchema(m))
	}
}

// ModelSchema lowers a model into an object schema.
func ModelSchema(m *model.Model) *openapi3.Schema {
	s := &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeObject},
		Description: m.Description,
		Properties:  make(openapi3.Schemas, len(m.Properties)),
	}
	for _, p := range m.Properties {
		s.Properties[p.Name] = schemaRef(p.Schema, p.Description)
	}
	if len(m.Required) > 0 {
		s.Required = append([]string(nil), m.Required...)
	}
	return s
}

func schemaRef(s *model.Schema, description string) *openapi3.SchemaRef {
	if s == nil {
		return openapi3.NewSchemaRef("", &openapi3.Schema{Description: description})
	}
	if s.IsRef() {
		ref := openapi3.NewSchemaRef(RefPrefix+s.Ref, nil)
		if !s.Nullable && description == "" {
			return ref
		}
		// $ref siblings are ignored in 3.0, so wrap it
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			AllOf:       openapi3.SchemaRefs{ref},
			Nullable:    s.Nullable,
			Description: description,
		})
	}

	out := &openapi3.Schema{
		Format:      s.Format,
		Nullable:    s.Nullable,
		Description: description,
		Enum:        enumValues(s.Enum),
	}
	switch s.Kind {
	case model.KindString:
		out.Type = &openapi3.Types{openapi3.TypeString}
	case model.KindInteger:
		out.Type = &openapi3.Types{openapi3.TypeInteger}
	case model.KindNumber:
		out.Type = &openapi3.Types{openapi3.TypeNumber}
	case model.KindBoolean:
		out.Type = &openapi3.Types{openapi3.TypeBoolean}
	case model.KindArray:
		out.Type = &openapi3.Types{openapi3.TypeArray}
		out.Items = schemaRef(s.Items, "")
	case model.KindObject:
		out.Type = &openapi3.Types{openapi3.TypeObject}
		if s.AdditionalProperties != nil {
			out.AdditionalProperties = openapi3.AdditionalProperties{Schema: schemaRef(s.AdditionalProperties, "")}
		} else {
			has := true
			out.AdditionalProperties = openapi3.AdditionalProperties{Has: &has}
		}
	}
	return openapi3.NewSchemaRef("", out)
}

// enumValues converts enum values to their JSON forms.
func enumValues(values []any) []any {
	if len(values) == 0 {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return append([]any(nil), values...)
	}
	var out []any
	if err := json.Unmarshal(data, &out); err != nil {
		return append([]any(nil), values...)
	}
	return out
}
