package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

type Widget struct{}

type Page[T any] struct {
	Items []T
}

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func TestConventions(t *testing.T) {
	w := typeinfo.TypeOf(Widget{})

	assert.Equal(t, "Widget", Simple(w))
	assert.Equal(t, "github.com.blimu-dev.schemagen.pkg.naming.Widget", Qualified(w))
	assert.Equal(t, "NamingWidget", Pascal(w))
	assert.Equal(t, "v1.Widget", WithPrefix("v1.", Simple)(w))
}

func TestWithPrefixKeepsEmptyIDs(t *testing.T) {
	anonymous := typeinfo.TypeOf(struct{ A int }{})
	assert.Equal(t, "", WithPrefix("v1.", Simple)(anonymous))
}

func TestQualifiedWithoutPackage(t *testing.T) {
	assert.Equal(t, "int", Qualified(typeinfo.TypeOf(0)))
}

func TestLookup(t *testing.T) {
	c, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "Widget", c(typeinfo.TypeOf(Widget{})))

	c, err = Lookup("Pascal")
	require.NoError(t, err)
	assert.Equal(t, "NamingWidget", c(typeinfo.TypeOf(Widget{})))

	_, err = Lookup("kebab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pascal, qualified, simple")
}

func TestGenericInstantiations(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{Page[Widget]{}, "Page_Widget"},
		{Page[[]Widget]{}, "Page_Slice_Widget"},
		{Page[*Widget]{}, "Page_Widget"},
		{Page[Page[Widget]]{}, "Page_Page_Widget"},
		{Pair[string, Widget]{}, "Pair_string_Widget"},
		{Page[map[string]int]{}, "Page_map_string_int"},
	}

	valid := regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	for _, test := range tests {
		ti := typeinfo.TypeOf(test.value)
		if got := Simple(ti); got != test.expected {
			t.Errorf("Simple(%s) = %q, expected %q", ti, got, test.expected)
		}
		if got := Qualified(ti); !valid.MatchString(got) {
			t.Errorf("Qualified(%s) = %q is not a valid component name", ti, got)
		}
	}

	assert.Equal(t, "github.com.blimu-dev.schemagen.pkg.naming.Page_Widget", Qualified(typeinfo.TypeOf(Page[Widget]{})))
	assert.Equal(t, "NamingPageWidget", Pascal(typeinfo.TypeOf(Page[Widget]{})))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"User", "User"},
		{"Page[example.com/api.User]", "Page_User"},
		{"Page[[]example.com/api.User]", "Page_Slice_User"},
		{"Pair[int,example.com/api.User]", "Pair_int_User"},
	}

	for _, test := range tests {
		if got := TypeName(test.input); got != test.expected {
			t.Errorf("TypeName(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
