// Package typegraph builds type descriptors from declarative type definitions, so that type
// graphs can be synthesized without Go types behind them.
package typegraph

import (
	"fmt"
	"strings"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

var primitives = map[string]typeinfo.Primitive{
	"bool":     typeinfo.PrimitiveBool,
	"boolean":  typeinfo.PrimitiveBool,
	"int":      typeinfo.PrimitiveInt64,
	"int32":    typeinfo.PrimitiveInt32,
	"int64":    typeinfo.PrimitiveInt64,
	"integer":  typeinfo.PrimitiveInt64,
	"float":    typeinfo.PrimitiveFloat,
	"double":   typeinfo.PrimitiveDouble,
	"number":   typeinfo.PrimitiveDouble,
	"string":   typeinfo.PrimitiveString,
	"bytes":    typeinfo.PrimitiveBytes,
	"datetime": typeinfo.PrimitiveTime,
	"any":      typeinfo.PrimitiveAny,
}

// Graph is a set of named types resolved from definitions.
type Graph struct {
	named map[string]*namedType
	order []string
}

// Build resolves the definitions into a graph. Property types may reference any definition,
// including the defining type itself.
func Build(defs []config.TypeDef) (*Graph, error) {
	g := &Graph{named: map[string]*namedType{}}
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("types[%d]: name is required", i)
		}
		if _, ok := primitives[def.Name]; ok {
			return nil, fmt.Errorf("types[%d]: %q shadows a primitive", i, def.Name)
		}
		if _, ok := g.named[def.Name]; ok {
			return nil, fmt.Errorf("types[%d]: duplicate type %q", i, def.Name)
		}
		n, err := newNamedType(def)
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		g.named[def.Name] = n
		g.order = append(g.order, def.Name)
	}
	for i, def := range defs {
		n := g.named[def.Name]
		seen := map[string]bool{}
		for j, pd := range def.Properties {
			if seen[pd.Name] {
				return nil, fmt.Errorf("types[%d].properties[%d]: duplicate property %q", i, j, pd.Name)
			}
			seen[pd.Name] = true
			p, err := g.property(pd)
			if err != nil {
				return nil, fmt.Errorf("types[%d].properties[%d]: %w", i, j, err)
			}
			n.props = append(n.props, p)
		}
	}
	return g, nil
}

// Lookup returns the named type.
func (g *Graph) Lookup(name string) (typeinfo.Type, bool) {
	n, ok := g.named[name]
	if !ok {
		return nil, false
	}
	return n, true
}

// Types returns every named type in definition order.
func (g *Graph) Types() []typeinfo.Type {
	out := make([]typeinfo.Type, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.named[name])
	}
	return out
}

// Roots resolves root type names.
func (g *Graph) Roots(names []string) ([]typeinfo.Type, error) {
	out := make([]typeinfo.Type, 0, len(names))
	for _, name := range names {
		t, ok := g.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown root type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func (g *Graph) property(pd config.PropertyDef) (typeinfo.Property, error) {
	expr := strings.TrimSpace(pd.Type)
	nullable := false
	for strings.HasPrefix(expr, "*") {
		nullable = true
		expr = strings.TrimSpace(expr[1:])
	}
	t, err := g.parse(expr)
	if err != nil {
		return typeinfo.Property{}, err
	}
	p := typeinfo.Property{Name: pd.Name, Type: t, Nullable: nullable, Description: pd.Description}
	if pd.Required != nil {
		if *pd.Required {
			p.Requiredness = typeinfo.Required
		} else {
			p.Requiredness = typeinfo.Optional
		}
	}
	return p, nil
}

// parse resolves a type expression; pointers below the property level are dropped.
func (g *Graph) parse(expr string) (typeinfo.Type, error) {
	expr = strings.TrimLeft(strings.TrimSpace(expr), "*")
	switch {
	case expr == "":
		return nil, fmt.Errorf("empty type expression")
	case strings.HasPrefix(expr, "[]"):
		elem, err := g.parse(expr[2:])
		if err != nil {
			return nil, err
		}
		return containerType{kind: typeinfo.ContainerList, elem: elem}, nil
	case strings.HasPrefix(expr, "map["):
		key, rest, ok := strings.Cut(expr[len("map["):], "]")
		if !ok {
			return nil, fmt.Errorf("malformed map type %q", expr)
		}
		if strings.TrimSpace(key) != "string" {
			return nil, fmt.Errorf("%w: map key %q is not a string", typeinfo.ErrUnsupported, key)
		}
		elem, err := g.parse(rest)
		if err != nil {
			return nil, err
		}
		return containerType{kind: typeinfo.ContainerMap, elem: elem}, nil
	}
	if p, ok := primitives[expr]; ok {
		return primitiveType{p: p}, nil
	}
	if n, ok := g.named[expr]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("unknown type %q", expr)
}
