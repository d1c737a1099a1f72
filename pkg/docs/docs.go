// Package docs renders a Markdown reference of synthesized models.
package docs

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/naming"
)

//go:embed templates/*
var templatesFS embed.FS

const templateName = "models.md.tmpl"

// Render writes the reference for models, in the given order, to w.
func Render(w io.Writer, title string, models []*model.Model) error {
	funcMap := sprig.TxtFuncMap()
	funcMap["anchor"] = naming.ToKebabCase
	funcMap["typeLabel"] = TypeLabel
	funcMap["required"] = func(m *model.Model, name string) bool { return m.IsRequired(name) }

	tmplContent, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}
	if err := tmpl.Execute(w, map[string]any{"Title": title, "Models": models}); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return nil
}

// TypeLabel describes a schema in one line of Markdown.
func TypeLabel(s *model.Schema) string {
	if s == nil {
		return "any"
	}
	label := baseLabel(s)
	if s.Nullable {
		label += ", nullable"
	}
	return label
}

func baseLabel(s *model.Schema) string {
	switch {
	case s.IsRef():
		return fmt.Sprintf("[%s](#%s)", s.Ref, naming.ToKebabCase(s.Ref))
	case len(s.Enum) > 0:
		vals := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			vals = append(vals, fmt.Sprintf("`%v`", v))
		}
		return fmt.Sprintf("%s enum: %s", s.Kind, strings.Join(vals, ", "))
	case s.Kind == model.KindArray:
		if s.Items == nil {
			return "array"
		}
		return "array of " + baseLabel(s.Items)
	case s.Kind == model.KindObject:
		if s.AdditionalProperties == nil {
			return "object"
		}
		return "map of " + baseLabel(s.AdditionalProperties)
	case s.Kind == model.KindUnknown:
		return "any"
	case s.Format != "":
		return fmt.Sprintf("%s (%s)", s.Kind, s.Format)
	}
	return string(s.Kind)
}
