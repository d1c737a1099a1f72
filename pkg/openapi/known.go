package openapi

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/schemagen/pkg/model"
)

// KnownModels reads the document's component schemas as models known by id, sorted by id.
// Schemas that are not objects still become models without properties so references to
// them resolve.
func KnownModels(doc *openapi3.T) []*model.Model {
	if doc == nil || doc.Components == nil || doc.Components.Schemas == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*model.Model, 0, len(names))
	for _, name := range names {
		m := &model.Model{ID: name, Properties: []model.Property{}, Required: []string{}}
		sr := doc.Components.Schemas[name]
		if sr != nil && sr.Value != nil {
			s := sr.Value
			m.Description = s.Description
			if s.Type != nil && s.Type.Is(openapi3.TypeObject) {
				for pn, pr := range s.Properties {
					desc := ""
					if pr != nil && pr.Value != nil {
						desc = pr.Value.Description
					}
					m.Properties = append(m.Properties, model.Property{Name: pn, Schema: toModelSchema(pr), Description: desc})
				}
				m.SortProperties()
				for _, r := range s.Required {
					if _, ok := m.Property(r); ok {
						m.Required = append(m.Required, r)
					}
				}
				sort.Strings(m.Required)
			}
		}
		out = append(out, m)
	}
	return out
}

// refID returns the schema name a reference points to.
func refID(ref string) string {
	if strings.HasPrefix(ref, RefPrefix) {
		return strings.TrimPrefix(ref, RefPrefix)
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

func toModelSchema(sr *openapi3.SchemaRef) *model.Schema {
	if sr == nil {
		return &model.Schema{Kind: model.KindUnknown}
	}
	if sr.Ref != "" {
		if id := refID(sr.Ref); id != "" {
			return model.Ref(id)
		}
		return &model.Schema{Kind: model.KindUnknown}
	}
	if sr.Value == nil {
		return &model.Schema{Kind: model.KindUnknown}
	}
	s := sr.Value

	// nullable or described references are wrapped in a single allOf
	if len(s.AllOf) == 1 && s.AllOf[0] != nil && s.AllOf[0].Ref != "" {
		out := toModelSchema(s.AllOf[0])
		out.Nullable = s.Nullable
		return out
	}

	out := &model.Schema{Kind: model.KindUnknown, Format: s.Format, Nullable: s.Nullable}
	if len(s.Enum) > 0 {
		out.Enum = append([]any(nil), s.Enum...)
	}
	if s.Type == nil {
		return out
	}
	switch {
	case s.Type.Is(openapi3.TypeString):
		out.Kind = model.KindString
	case s.Type.Is(openapi3.TypeInteger):
		out.Kind = model.KindInteger
	case s.Type.Is(openapi3.TypeNumber):
		out.Kind = model.KindNumber
	case s.Type.Is(openapi3.TypeBoolean):
		out.Kind = model.KindBoolean
	case s.Type.Is(openapi3.TypeArray):
		out.Kind = model.KindArray
		out.Items = toModelSchema(s.Items)
	case s.Type.Is(openapi3.TypeObject):
		out.Kind = model.KindObject
		if s.AdditionalProperties.Schema != nil {
			out.AdditionalProperties = toModelSchema(s.AdditionalProperties.Schema)
		}
	}
	return out
}
