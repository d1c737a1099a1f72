// Package naming provides the conventions that turn a type into a schema id.
package naming

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// Convention computes the schema id of a type. It must be a pure function of the type.
type Convention func(t typeinfo.Type) string

// Simple uses the bare type name.
func Simple(t typeinfo.Type) string {
	return TypeName(t.Name())
}

// Qualified prefixes the type name with its package path, with slashes replaced by dots.
func Qualified(t typeinfo.Type) string {
	pkg := t.PkgPath()
	if pkg == "" {
		return TypeName(t.Name())
	}
	return strings.ReplaceAll(pkg, "/", ".") + "." + TypeName(t.Name())
}

// Pascal joins the last package path element and the type name in PascalCase ("api.user_v2"
// becomes "ApiUserV2").
func Pascal(t typeinfo.Type) string {
	name := TypeName(t.Name())
	if pkg := t.PkgPath(); pkg != "" {
		name = path.Base(pkg) + "_" + name
	}
	return ToPascalCase(name)
}

var typeToken = regexp.MustCompile(`[\w./-]+`)

// TypeName makes a type name usable in a component reference. Type arguments of generic
// instantiations lose their package paths and are joined with underscores, so
// "Page[example.com/api.User]" becomes "Page_User" and "Page[[]example.com/api.User]"
// becomes "Page_Slice_User".
func TypeName(name string) string {
	if !strings.ContainsAny(name, "[]*/") {
		return name
	}
	name = strings.ReplaceAll(name, "[]", " Slice ")
	tokens := typeToken.FindAllString(name, -1)
	for i, tok := range tokens {
		if dot := strings.LastIndexByte(tok, '.'); dot >= 0 {
			tokens[i] = tok[dot+1:]
		}
	}
	return strings.Join(tokens, "_")
}

// WithPrefix prepends prefix to every id produced by c.
func WithPrefix(prefix string, c Convention) Convention {
	return func(t typeinfo.Type) string {
		id := c(t)
		if id == "" {
			return ""
		}
		return prefix + id
	}
}

var conventions = map[string]Convention{
	"simple":    Simple,
	"qualified": Qualified,
	"pascal":    Pascal,
}

// Lookup returns the convention registered under name. An empty name selects Simple.
func Lookup(name string) (Convention, error) {
	if name == "" {
		return Simple, nil
	}
	c, ok := conventions[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown naming convention %q (available: %s)", name, strings.Join(Available(), ", "))
	}
	return c, nil
}

// Available returns the registered convention names, sorted.
func Available() []string {
	out := make([]string, 0, len(conventions))
	for n := range conventions {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
