// Package typeinfo describes the types that schema synthesis walks.
//
// The synthesis engine never touches a concrete reflection facility. It only sees the Type
// interface, which is implemented here for Go's reflect package (see Of and TypeOf) and by
// the declarative typegraph package for type graphs defined in configuration.
package typeinfo

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a type cannot be enumerated or classified.
var ErrUnsupported = errors.New("unsupported type")

// Primitive identifies a scalar type that maps directly to a schema type keyword.
type Primitive int

const (
	PrimitiveNone Primitive = iota
	PrimitiveBool
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveString
	PrimitiveBytes
	PrimitiveTime
	// PrimitiveAny is an opaque value of any shape (Go interfaces).
	PrimitiveAny
)

var primitiveNames = map[Primitive]string{
	PrimitiveBool:   "bool",
	PrimitiveInt32:  "int32",
	PrimitiveInt64:  "int64",
	PrimitiveFloat:  "float",
	PrimitiveDouble: "double",
	PrimitiveString: "string",
	PrimitiveBytes:  "bytes",
	PrimitiveTime:   "datetime",
	PrimitiveAny:    "any",
}

func (p Primitive) String() string {
	if n, ok := primitiveNames[p]; ok {
		return n
	}
	return "none"
}

// ContainerKind identifies generic container types.
type ContainerKind int

const (
	ContainerNone ContainerKind = iota
	ContainerList
	ContainerMap
)

// Requiredness is an explicit author annotation on a property.
type Requiredness int

const (
	// Unspecified leaves the decision to the implicit value-type rule.
	Unspecified Requiredness = iota
	Required
	Optional
)

// Type is a reflective type descriptor.
type Type interface {
	fmt.Stringer

	// Handle returns a comparable value identifying the type. Two descriptors of the same
	// type return equal handles.
	Handle() any
	Name() string
	PkgPath() string
	Description() string

	// Primitive reports the scalar kind of the type, if it is one.
	Primitive() (Primitive, bool)
	// IsValueType reports whether the type cannot represent absence (fixed-size numbers,
	// booleans, value structs).
	IsValueType() bool
	IsEnum() bool
	EnumValues() []any
	Container() ContainerKind
	// Elem returns the element type of a list or the value type of a map.
	Elem() (Type, error)
	// IsObject reports whether the type has enumerable properties.
	IsObject() bool
	Properties() ([]Property, error)
}

// Property describes one property of an object type.
type Property struct {
	Name string
	Type Type
	// Nullable marks a property that can be absent regardless of its type (Go pointers).
	Nullable     bool
	Requiredness Requiredness
	Description  string
}

// Enum is implemented by Go types whose values form a closed set.
type Enum interface {
	EnumValues() []any
}

// Describer is implemented by Go types that carry a schema description.
type Describer interface {
	SchemaDescription() string
}
