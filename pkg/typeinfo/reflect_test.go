package typeinfo_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

type Color string

func (Color) EnumValues() []any { return []any{Color("red"), Color("green")} }

type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

type Named struct {
	ID string `json:"id"`
}

// Account mixes tags, embedding and pointers.
type Account struct {
	Audit
	*Named
	ID       int     `json:"id" schema:"required"`
	Email    *string `json:"email,omitempty" description:"primary address"`
	Color    Color   `json:"color" schema:"optional"`
	Secret   string  `json:"-"`
	internal int
	Tags     []string          `json:"tags"`
	Attrs    map[string]any    `json:"attrs"`
	ByIndex  map[int]string    `json:"byIndex"`
	Peers    []*Account        `json:"peers"`
	Addr     net.IP            `json:"addr"`
	Extra    map[string]*Audit `json:"extra"`
}

func (Account) SchemaDescription() string { return "An account." }

func property(t *testing.T, props []typeinfo.Property, name string) typeinfo.Property {
	t.Helper()
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("property %q not found", name)
	return typeinfo.Property{}
}

func TestReflectProperties(t *testing.T) {
	account := typeinfo.TypeOf(&Account{})
	require.True(t, account.IsObject())
	assert.Equal(t, "Account", account.Name())
	assert.Equal(t, "github.com/blimu-dev/schemagen/pkg/typeinfo_test", account.PkgPath())
	assert.Equal(t, "An account.", account.Description())

	props, err := account.Properties()
	require.NoError(t, err)

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"createdAt", "createdBy", "id", "email", "color", "tags", "attrs", "byIndex", "peers", "addr", "extra"}, names)

	id := property(t, props, "id")
	assert.Equal(t, typeinfo.Required, id.Requiredness)
	assert.Equal(t, "int", id.Type.String())

	email := property(t, props, "email")
	assert.True(t, email.Nullable)
	assert.Equal(t, "string", email.Type.String())
	assert.Equal(t, "primary address", email.Description)

	assert.Equal(t, typeinfo.Optional, property(t, props, "color").Requiredness)
}

type Inner struct {
	ID string
}

type ViaInner struct {
	Inner
}

type Direct struct {
	ID int
}

// Outer reaches Inner.ID at depth two and Direct.ID at depth one.
type Outer struct {
	ViaInner
	Direct
}

type Left struct {
	Name string
	Side string `json:"Side"`
}

type Right struct {
	Name string
	Side int
}

type Sides struct {
	Left
	Right
}

type Base struct {
	Version int       `json:"version"`
	Created time.Time `json:"created"`
}

type Document struct {
	*Base
	Title string `json:"title"`
}

func TestReflectShallowestFieldWins(t *testing.T) {
	props, err := typeinfo.TypeOf(Outer{}).Properties()
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "ID", props[0].Name)
	assert.Equal(t, "int", props[0].Type.String())
}

func TestReflectEqualDepthConflicts(t *testing.T) {
	props, err := typeinfo.TypeOf(Sides{}).Properties()
	require.NoError(t, err)

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	// Name is ambiguous and dropped; the tagged Left.Side wins over Right.Side
	assert.Equal(t, []string{"Side"}, names)
	assert.Equal(t, "string", props[0].Type.String())
}

func TestReflectPointerEmbedIsNullable(t *testing.T) {
	props, err := typeinfo.TypeOf(Document{}).Properties()
	require.NoError(t, err)

	assert.True(t, property(t, props, "version").Nullable)
	assert.True(t, property(t, props, "created").Nullable)
	assert.False(t, property(t, props, "title").Nullable)

	audit, err := typeinfo.TypeOf(Account{}).Properties()
	require.NoError(t, err)
	assert.False(t, property(t, audit, "createdAt").Nullable)
}

func TestReflectClassification(t *testing.T) {
	props, err := typeinfo.TypeOf(Account{}).Properties()
	require.NoError(t, err)

	color := property(t, props, "color").Type
	assert.True(t, color.IsEnum())
	assert.False(t, color.IsValueType())
	assert.Equal(t, []any{"red", "green"}, color.EnumValues())

	addr := property(t, props, "addr").Type
	p, ok := addr.Primitive()
	assert.True(t, ok)
	assert.Equal(t, typeinfo.PrimitiveString, p)
	assert.Equal(t, typeinfo.ContainerNone, addr.Container())
}

func TestReflectContainers(t *testing.T) {
	props, err := typeinfo.TypeOf(Account{}).Properties()
	require.NoError(t, err)

	peers := property(t, props, "peers").Type
	assert.Equal(t, typeinfo.ContainerList, peers.Container())
	elem, err := peers.Elem()
	require.NoError(t, err)
	assert.Equal(t, "typeinfo_test.Account", elem.String())

	extra := property(t, props, "extra").Type
	assert.Equal(t, typeinfo.ContainerMap, extra.Container())
	elem, err = extra.Elem()
	require.NoError(t, err)
	assert.Equal(t, "typeinfo_test.Audit", elem.String())

	attrs, err := property(t, props, "attrs").Type.Elem()
	require.NoError(t, err)
	p, ok := attrs.Primitive()
	assert.True(t, ok)
	assert.Equal(t, typeinfo.PrimitiveAny, p)

	_, err = property(t, props, "byIndex").Type.Elem()
	assert.ErrorIs(t, err, typeinfo.ErrUnsupported)
}

func TestReflectValueTypes(t *testing.T) {
	tests := []struct {
		value    any
		expected bool
	}{
		{0, true},
		{uint8(0), true},
		{3.5, true},
		{true, true},
		{Audit{}, true},
		{"", false},
		{[]int{}, false},
		{map[string]int{}, false},
	}

	for _, test := range tests {
		ti := typeinfo.TypeOf(test.value)
		if got := ti.IsValueType(); got != test.expected {
			t.Errorf("IsValueType(%s) = %v, expected %v", ti, got, test.expected)
		}
	}
}

func TestReflectNonStructHasNoProperties(t *testing.T) {
	_, err := typeinfo.TypeOf(42).Properties()
	assert.ErrorIs(t, err, typeinfo.ErrUnsupported)

	_, err = typeinfo.TypeOf(nil).Properties()
	assert.ErrorIs(t, err, typeinfo.ErrUnsupported)
}

func TestReflectHandlesAreStable(t *testing.T) {
	assert.Equal(t, typeinfo.TypeOf(Account{}).Handle(), typeinfo.TypeOf(&Account{}).Handle())
	assert.NotEqual(t, typeinfo.TypeOf(Account{}).Handle(), typeinfo.TypeOf(Audit{}).Handle())
}
