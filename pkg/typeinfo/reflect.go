package typeinfo

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	enumType          = reflect.TypeOf((*Enum)(nil)).Elem()
	describerType     = reflect.TypeOf((*Describer)(nil)).Elem()
)

type reflectType struct {
	t reflect.Type
}

// Of returns the descriptor of a Go type.
func Of(t reflect.Type) Type {
	return reflectType{t: t}
}

// TypeOf returns the descriptor of the dynamic type of v, with pointers removed.
func TypeOf(v any) Type {
	return Of(deref(reflect.TypeOf(v)))
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (r reflectType) String() string {
	if r.t == nil {
		return "<nil>"
	}
	return r.t.String()
}

func (r reflectType) Handle() any { return r.t }

func (r reflectType) Name() string {
	if r.t == nil {
		return ""
	}
	return r.t.Name()
}

func (r reflectType) PkgPath() string {
	if r.t == nil {
		return ""
	}
	return r.t.PkgPath()
}

func (r reflectType) Description() string {
	if v, ok := implementation(r.t, describerType); ok {
		return v.Interface().(Describer).SchemaDescription()
	}
	return ""
}

func (r reflectType) Primitive() (Primitive, bool) {
	t := r.t
	if t == nil {
		return PrimitiveNone, false
	}
	if t == timeType {
		return PrimitiveTime, true
	}
	if t.Kind() != reflect.Interface && (t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)) {
		return PrimitiveString, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return PrimitiveBool, true
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return PrimitiveInt32, true
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return PrimitiveInt64, true
	case reflect.Float32:
		return PrimitiveFloat, true
	case reflect.Float64:
		return PrimitiveDouble, true
	case reflect.String:
		return PrimitiveString, true
	case reflect.Interface:
		return PrimitiveAny, true
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return PrimitiveBytes, true
		}
	}
	return PrimitiveNone, false
}

func (r reflectType) IsValueType() bool {
	if r.t == nil {
		return false
	}
	switch r.t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Struct:
		return true
	}
	return false
}

func (r reflectType) IsEnum() bool {
	_, ok := implementation(r.t, enumType)
	return ok
}

func (r reflectType) EnumValues() []any {
	v, ok := implementation(r.t, enumType)
	if !ok {
		return nil
	}
	values := v.Interface().(Enum).EnumValues()
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, basicValue(value))
	}
	return out
}

func (r reflectType) Container() ContainerKind {
	if r.t == nil {
		return ContainerNone
	}
	if p, ok := r.Primitive(); ok && p != PrimitiveNone {
		return ContainerNone
	}
	switch r.t.Kind() {
	case reflect.Slice, reflect.Array:
		return ContainerList
	case reflect.Map:
		return ContainerMap
	}
	return ContainerNone
}

func (r reflectType) Elem() (Type, error) {
	switch r.Container() {
	case ContainerList:
		return Of(deref(r.t.Elem())), nil
	case ContainerMap:
		key := r.t.Key()
		if key.Kind() != reflect.String && !key.Implements(textMarshalerType) {
			return nil, fmt.Errorf("%w: map key %s is not a string", ErrUnsupported, key)
		}
		return Of(deref(r.t.Elem())), nil
	}
	return nil, fmt.Errorf("%w: %s is not a container", ErrUnsupported, r)
}

func (r reflectType) IsObject() bool {
	return r.t != nil && r.t.Kind() == reflect.Struct
}

func (r reflectType) Properties() ([]Property, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: %s has no properties", ErrUnsupported, r)
	}
	return collectFields(r.t), nil
}

type field struct {
	prop   Property
	index  []int
	tagged bool
}

// collectFields selects properties the way encoding/json selects fields: the json tag names
// the property and "-" skips it, untagged embedded structs are promoted breadth first, the
// shallowest field of a name wins and equally deep conflicts drop the name unless exactly one
// of them is tagged. Fields promoted through an embedded pointer are nullable.
func collectFields(t reflect.Type) []Property {
	type embed struct {
		typ      reflect.Type
		index    []int
		nullable bool
	}

	var fields []field
	current := []embed{}
	next := []embed{{typ: t}}
	var count, nextCount map[reflect.Type]int
	visited := map[reflect.Type]bool{}

	for len(next) > 0 {
		current, next = next, current[:0]
		count, nextCount = nextCount, map[reflect.Type]int{}

		for _, e := range current {
			if visited[e.typ] {
				continue
			}
			visited[e.typ] = true

			for i := 0; i < e.typ.NumField(); i++ {
				sf := e.typ.Field(i)
				if sf.Anonymous {
					et := sf.Type
					if et.Kind() == reflect.Pointer {
						et = et.Elem()
					}
					if !sf.IsExported() && et.Kind() != reflect.Struct {
						continue
					}
				} else if !sf.IsExported() {
					continue
				}
				tag := sf.Tag.Get("json")
				if tag == "-" {
					continue
				}
				name, _, _ := strings.Cut(tag, ",")
				index := append(append([]int(nil), e.index...), i)

				ft := sf.Type
				if ft.Name() == "" && ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if name == "" && sf.Anonymous && ft.Kind() == reflect.Struct {
					nextCount[ft]++
					if nextCount[ft] == 1 {
						next = append(next, embed{typ: ft, index: index, nullable: e.nullable || sf.Type.Kind() == reflect.Pointer})
					}
					continue
				}
				if !sf.IsExported() {
					continue
				}

				nullable := e.nullable
				pt := sf.Type
				for pt.Kind() == reflect.Pointer {
					pt = pt.Elem()
					nullable = true
				}
				tagged := name != ""
				if !tagged {
					name = sf.Name
				}
				f := field{
					prop: Property{
						Name:         name,
						Type:         Of(pt),
						Nullable:     nullable,
						Requiredness: parseRequiredness(sf.Tag.Get("schema")),
						Description:  sf.Tag.Get("description"),
					},
					index:  index,
					tagged: tagged,
				}
				fields = append(fields, f)
				// a type embedded twice at one depth conflicts with itself
				if count[e.typ] > 1 {
					fields = append(fields, f)
				}
			}
		}
	}

	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i], fields[j]
		if a.prop.Name != b.prop.Name {
			return a.prop.Name < b.prop.Name
		}
		if len(a.index) != len(b.index) {
			return len(a.index) < len(b.index)
		}
		if a.tagged != b.tagged {
			return a.tagged
		}
		return indexLess(a.index, b.index)
	})

	var selected []field
	for i := 0; i < len(fields); {
		j := i + 1
		for j < len(fields) && fields[j].prop.Name == fields[i].prop.Name {
			j++
		}
		group := fields[i:j]
		if len(group) == 1 || len(group[0].index) < len(group[1].index) || group[0].tagged != group[1].tagged {
			selected = append(selected, group[0])
		}
		i = j
	}

	sort.Slice(selected, func(i, j int) bool { return indexLess(selected[i].index, selected[j].index) })
	props := make([]Property, 0, len(selected))
	for _, f := range selected {
		props = append(props, f.prop)
	}
	return props
}

func indexLess(a, b []int) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

func parseRequiredness(tag string) Requiredness {
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "required":
			return Required
		case "optional":
			return Optional
		}
	}
	return Unspecified
}

// implementation returns a value of t (or *t) that implements iface.
func implementation(t reflect.Type, iface reflect.Type) (reflect.Value, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}
	if t.Implements(iface) {
		return reflect.Zero(t), true
	}
	if reflect.PointerTo(t).Implements(iface) {
		return reflect.New(t), true
	}
	return reflect.Value{}, false
}

// basicValue strips named types from enum values so they serialize as plain JSON scalars.
func basicValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	}
	return v
}
