package synth

import (
	"fmt"

	"github.com/blimu-dev/schemagen/pkg/naming"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// Resolver maps types to schema ids through a naming convention.
type Resolver struct {
	convention naming.Convention
}

// NewResolver returns a resolver using c, or naming.Simple when c is nil.
func NewResolver(c naming.Convention) Resolver {
	if c == nil {
		c = naming.Simple
	}
	return Resolver{convention: c}
}

// ResolveID returns the schema id of t.
func (r Resolver) ResolveID(t typeinfo.Type) (string, error) {
	id := r.convention(t)
	if id == "" {
		return "", fmt.Errorf("%w for %s: anonymous types need a name", ErrEmptyID, t)
	}
	return id, nil
}
