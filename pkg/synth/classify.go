package synth

import (
	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// IsPrimitive reports whether t maps directly to a schema type keyword.
func IsPrimitive(t typeinfo.Type) bool {
	_, ok := t.Primitive()
	return ok && !t.IsEnum()
}

// IsEnum reports whether t is a closed set of values.
func IsEnum(t typeinfo.Type) bool {
	return t.IsEnum()
}

// IsContainer reports whether t is a list or map.
func IsContainer(t typeinfo.Type) bool {
	return t.Container() != typeinfo.ContainerNone
}

// IsClassProperty reports whether t is expanded into a model of its own.
func IsClassProperty(t typeinfo.Type) bool {
	return !IsPrimitive(t) && !IsEnum(t) && !IsContainer(t) && t.IsObject()
}

// LeafSchema returns the inline schema of a primitive type.
func LeafSchema(p typeinfo.Primitive) *model.Schema {
	switch p {
	case typeinfo.PrimitiveBool:
		return &model.Schema{Kind: model.KindBoolean}
	case typeinfo.PrimitiveInt32:
		return &model.Schema{Kind: model.KindInteger, Format: "int32"}
	case typeinfo.PrimitiveInt64:
		return &model.Schema{Kind: model.KindInteger, Format: "int64"}
	case typeinfo.PrimitiveFloat:
		return &model.Schema{Kind: model.KindNumber, Format: "float"}
	case typeinfo.PrimitiveDouble:
		return &model.Schema{Kind: model.KindNumber, Format: "double"}
	case typeinfo.PrimitiveString:
		return &model.Schema{Kind: model.KindString}
	case typeinfo.PrimitiveBytes:
		return &model.Schema{Kind: model.KindString, Format: "byte"}
	case typeinfo.PrimitiveTime:
		return &model.Schema{Kind: model.KindString, Format: "date-time"}
	}
	return &model.Schema{Kind: model.KindUnknown}
}

// EnumSchema returns the inline schema of an enum type. The kind follows the enum's
// underlying primitive and defaults to string.
func EnumSchema(t typeinfo.Type) *model.Schema {
	s := &model.Schema{Kind: model.KindString}
	if p, ok := t.Primitive(); ok {
		s = LeafSchema(p)
	}
	s.Enum = append([]any(nil), t.EnumValues()...)
	return s
}
