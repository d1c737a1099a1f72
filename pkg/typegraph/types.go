package typegraph

import (
	"fmt"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

type namedType struct {
	name        string
	pkg         string
	enum        bool
	valueType   bool
	base        typeinfo.Primitive
	values      []any
	description string
	props       []typeinfo.Property
}

func newNamedType(def config.TypeDef) (*namedType, error) {
	n := &namedType{
		name:        def.Name,
		pkg:         def.Package,
		valueType:   def.ValueType,
		description: def.Description,
	}
	switch def.Kind {
	case "", "object":
	case "enum":
		if len(def.Properties) > 0 {
			return nil, fmt.Errorf("enum %q cannot declare properties", def.Name)
		}
		if len(def.Values) == 0 {
			return nil, fmt.Errorf("enum %q has no values", def.Name)
		}
		n.enum = true
		n.base = typeinfo.PrimitiveString
		if def.Base != "" {
			p, ok := primitives[def.Base]
			if !ok || p == typeinfo.PrimitiveAny || p == typeinfo.PrimitiveBytes {
				return nil, fmt.Errorf("enum %q has unsupported base %q", def.Name, def.Base)
			}
			n.base = p
		}
		n.values = append([]any(nil), def.Values...)
	default:
		return nil, fmt.Errorf("type %q has unknown kind %q", def.Name, def.Kind)
	}
	return n, nil
}

func (n *namedType) String() string {
	if n.pkg == "" {
		return n.name
	}
	return n.pkg + "." + n.name
}

func (n *namedType) Handle() any         { return n }
func (n *namedType) Name() string        { return n.name }
func (n *namedType) PkgPath() string     { return n.pkg }
func (n *namedType) Description() string { return n.description }

func (n *namedType) Primitive() (typeinfo.Primitive, bool) {
	if n.enum {
		return n.base, true
	}
	return typeinfo.PrimitiveNone, false
}

func (n *namedType) IsValueType() bool {
	if n.enum {
		return primitiveType{p: n.base}.IsValueType()
	}
	return n.valueType
}

func (n *namedType) IsEnum() bool { return n.enum }

func (n *namedType) EnumValues() []any { return append([]any(nil), n.values...) }

func (n *namedType) Container() typeinfo.ContainerKind { return typeinfo.ContainerNone }

func (n *namedType) Elem() (typeinfo.Type, error) {
	return nil, fmt.Errorf("%w: %s is not a container", typeinfo.ErrUnsupported, n)
}

func (n *namedType) IsObject() bool { return !n.enum }

func (n *namedType) Properties() ([]typeinfo.Property, error) {
	if n.enum {
		return nil, fmt.Errorf("%w: enum %s has no properties", typeinfo.ErrUnsupported, n)
	}
	return append([]typeinfo.Property(nil), n.props...), nil
}

type primitiveType struct {
	p typeinfo.Primitive
}

func (p primitiveType) String() string                        { return p.p.String() }
func (p primitiveType) Handle() any                           { return p }
func (p primitiveType) Name() string                          { return p.p.String() }
func (p primitiveType) PkgPath() string                       { return "" }
func (p primitiveType) Description() string                   { return "" }
func (p primitiveType) Primitive() (typeinfo.Primitive, bool) { return p.p, true }
func (p primitiveType) IsEnum() bool                          { return false }
func (p primitiveType) EnumValues() []any                     { return nil }
func (p primitiveType) Container() typeinfo.ContainerKind     { return typeinfo.ContainerNone }
func (p primitiveType) IsObject() bool                        { return false }

func (p primitiveType) IsValueType() bool {
	switch p.p {
	case typeinfo.PrimitiveBool, typeinfo.PrimitiveInt32, typeinfo.PrimitiveInt64,
		typeinfo.PrimitiveFloat, typeinfo.PrimitiveDouble, typeinfo.PrimitiveTime:
		return true
	}
	return false
}

func (p primitiveType) Elem() (typeinfo.Type, error) {
	return nil, fmt.Errorf("%w: %s is not a container", typeinfo.ErrUnsupported, p)
}

func (p primitiveType) Properties() ([]typeinfo.Property, error) {
	return nil, fmt.Errorf("%w: %s has no properties", typeinfo.ErrUnsupported, p)
}

type containerType struct {
	kind typeinfo.ContainerKind
	elem typeinfo.Type
}

func (c containerType) String() string {
	if c.kind == typeinfo.ContainerMap {
		return "map[string]" + c.elem.String()
	}
	return "[]" + c.elem.String()
}

func (c containerType) Handle() any                           { return c }
func (c containerType) Name() string                          { return "" }
func (c containerType) PkgPath() string                       { return "" }
func (c containerType) Description() string                   { return "" }
func (c containerType) Primitive() (typeinfo.Primitive, bool) { return typeinfo.PrimitiveNone, false }
func (c containerType) IsValueType() bool                     { return false }
func (c containerType) IsEnum() bool                          { return false }
func (c containerType) EnumValues() []any                     { return nil }
func (c containerType) Container() typeinfo.ContainerKind     { return c.kind }
func (c containerType) Elem() (typeinfo.Type, error)          { return c.elem, nil }
func (c containerType) IsObject() bool                        { return false }

func (c containerType) Properties() ([]typeinfo.Property, error) {
	return nil, fmt.Errorf("%w: %s has no properties", typeinfo.ErrUnsupported, c)
}
