package synth

import (
	"sort"

	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// IsImplicitlyRequired reports whether the property cannot represent absence: its type is a
// value type and the property itself is not nullable.
func IsImplicitlyRequired(p typeinfo.Property) bool {
	return !p.Nullable && p.Type != nil && p.Type.IsValueType()
}

// IsRequired applies the explicit annotation when present, else the implicit rule.
func IsRequired(p typeinfo.Property) bool {
	switch p.Requiredness {
	case typeinfo.Required:
		return true
	case typeinfo.Optional:
		return false
	}
	return IsImplicitlyRequired(p)
}

// RequiredSet returns the sorted, deduplicated names of the required properties.
func RequiredSet(props []typeinfo.Property) []string {
	uniq := map[string]struct{}{}
	for _, p := range props {
		if IsRequired(p) {
			uniq[p.Name] = struct{}{}
		}
	}
	out := make([]string, 0, len(uniq))
	for n := range uniq {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
