// Package model holds the schema entries produced by synthesis.
package model

import (
	"sort"

	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// SchemaKind represents the kind of schema
type SchemaKind string

const (
	KindUnknown SchemaKind = "unknown"
	KindString  SchemaKind = "string"
	KindNumber  SchemaKind = "number"
	KindInteger SchemaKind = "integer"
	KindBoolean SchemaKind = "boolean"
	KindArray   SchemaKind = "array"
	KindObject  SchemaKind = "object"
	KindRef     SchemaKind = "ref"
)

// Schema is either an inline leaf schema or a reference to another model by id.
type Schema struct {
	Kind     SchemaKind `json:"kind" yaml:"kind"`
	Format   string     `json:"format,omitempty" yaml:"format,omitempty"`
	Nullable bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Ref is the id of the referenced model when Kind is KindRef
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Map values; nil for untyped objects
	AdditionalProperties *Schema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Ref returns a schema referencing the model with the given id.
func Ref(id string) *Schema {
	return &Schema{Kind: KindRef, Ref: id}
}

// IsRef reports whether the schema references another model.
func (s *Schema) IsRef() bool {
	return s != nil && s.Kind == KindRef
}

// Property is a named property of a model.
type Property struct {
	Name        string  `json:"name" yaml:"name"`
	Schema      *Schema `json:"schema" yaml:"schema"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Model is the synthesized description of one type.
type Model struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Properties are ordered by name.
	Properties []Property `json:"properties" yaml:"properties"`
	// Required is sorted and only names entries of Properties.
	Required []string `json:"required" yaml:"required"`

	// Origin is the type the model was derived from. It is nil for models imported by id.
	Origin typeinfo.Type `json:"-" yaml:"-"`
}

// Property returns the property with the given name.
func (m *Model) Property(name string) (*Property, bool) {
	for i := range m.Properties {
		if m.Properties[i].Name == name {
			return &m.Properties[i], true
		}
	}
	return nil, false
}

// IsRequired reports whether name is in the required set.
func (m *Model) IsRequired(name string) bool {
	for _, r := range m.Required {
		if r == name {
			return true
		}
	}
	return false
}

// PropertyNames returns the property names in model order.
func (m *Model) PropertyNames() []string {
	names := make([]string, 0, len(m.Properties))
	for _, p := range m.Properties {
		names = append(names, p.Name)
	}
	return names
}

// References returns the ids of the models this model points to, sorted and deduplicated.
func (m *Model) References() []string {
	uniq := map[string]struct{}{}
	for _, p := range m.Properties {
		collectRefs(p.Schema, uniq)
	}
	out := make([]string, 0, len(uniq))
	for id := range uniq {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func collectRefs(s *Schema, into map[string]struct{}) {
	if s == nil {
		return
	}
	if s.Kind == KindRef {
		into[s.Ref] = struct{}{}
	}
	collectRefs(s.Items, into)
	collectRefs(s.AdditionalProperties, into)
}

// SortProperties orders properties by name.
func (m *Model) SortProperties() {
	sort.SliceStable(m.Properties, func(i, j int) bool { return m.Properties[i].Name < m.Properties[j].Name })
}
