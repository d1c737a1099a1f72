// Package synth synthesizes schema models from type graphs.
//
// An Engine walks a root type's properties, expands every nested object type into a model of
// its own and references it by id, and collects the models in dependency order. Each run
// threads a Cache that deduplicates types and breaks cycles: a type is registered as a
// placeholder before its properties are resolved, so a second encounter becomes a reference.
package synth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/naming"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// ContainerMode selects how list and map properties are described.
type ContainerMode int

const (
	// ContainerExpand describes element types: arrays get items, maps get additionalProperties.
	ContainerExpand ContainerMode = iota
	// ContainerOpaque emits untyped array/object leaves without looking at element types.
	ContainerOpaque
)

// ParseContainerMode maps "expand" (or "") and "opaque" to a ContainerMode.
func ParseContainerMode(s string) (ContainerMode, error) {
	switch s {
	case "", "expand":
		return ContainerExpand, nil
	case "opaque":
		return ContainerOpaque, nil
	}
	return 0, fmt.Errorf("unknown container mode %q", s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithNaming sets the convention used to compute schema ids.
func WithNaming(c naming.Convention) Option {
	return func(e *Engine) { e.resolver = NewResolver(c) }
}

// WithContainers sets the container mode.
func WithContainers(m ContainerMode) Option {
	return func(e *Engine) { e.containers = m }
}

// WithLogger sets the logger; synthesis logs at debug level only.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine synthesizes models. It holds no run state and may be shared between goroutines as
// long as each uses its own Cache.
type Engine struct {
	resolver   Resolver
	containers ContainerMode
	logger     *zap.Logger
}

// New returns an engine using naming.Simple and ContainerExpand unless configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		resolver: NewResolver(nil),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Synthesize returns the known models followed by every model synthesized for root, each
// model after the models it references.
func (e *Engine) Synthesize(root typeinfo.Type, known ...*model.Model) ([]*model.Model, error) {
	cache, err := NewCache(known...)
	if err != nil {
		return nil, err
	}
	if err := e.SynthesizeInto(cache, root); err != nil {
		return nil, err
	}
	return cache.Models(), nil
}

// SynthesizeInto synthesizes every root into cache. On error, everything added by this call
// is removed again.
func (e *Engine) SynthesizeInto(cache *Cache, roots ...typeinfo.Type) error {
	cp := cache.checkpoint()
	for _, root := range roots {
		if err := e.synthesizeRoot(cache, root); err != nil {
			cache.rollback(cp)
			return err
		}
	}
	return nil
}

func (e *Engine) synthesizeRoot(c *Cache, root typeinfo.Type) error {
	if root == nil {
		return &ReflectionError{Type: "<nil>", Err: typeinfo.ErrUnsupported}
	}
	if _, ok := c.Lookup(root); !ok && !IsClassProperty(root) {
		return &ReflectionError{Type: root.String(), Err: fmt.Errorf("%w: root must be an object type", typeinfo.ErrUnsupported)}
	}
	_, err := e.resolve(c, root)
	return err
}

// resolve returns the id of the model for t, synthesizing it on first encounter.
func (e *Engine) resolve(c *Cache, t typeinfo.Type) (string, error) {
	if m, ok := c.Lookup(t); ok {
		e.logger.Debug("known model", zap.String("id", m.ID), zap.Bool("pending", c.IsPending(m.ID)))
		return m.ID, nil
	}
	id, err := e.resolver.ResolveID(t)
	if err != nil {
		return "", err
	}
	if m, ok := c.LookupID(id); ok {
		if m.Origin == nil {
			e.logger.Debug("known model by id", zap.String("id", id), zap.Stringer("type", t))
			return id, nil
		}
		return "", fmt.Errorf("%w %q: %s and %s", ErrDuplicateID, id, m.Origin, t)
	}

	c.Placeholder(t, id)
	e.logger.Debug("placeholder", zap.String("id", id), zap.Stringer("type", t))

	props, err := t.Properties()
	if err != nil {
		return "", &ReflectionError{Type: t.String(), Err: err}
	}
	m := &model.Model{
		ID:          id,
		Description: t.Description(),
		Properties:  make([]model.Property, 0, len(props)),
		Origin:      t,
	}
	for _, p := range props {
		s, err := e.propertySchema(c, t, p.Name, p.Type)
		if err != nil {
			return "", err
		}
		if p.Nullable {
			s.Nullable = true
		}
		m.Properties = append(m.Properties, model.Property{Name: p.Name, Schema: s, Description: p.Description})
	}
	m.SortProperties()
	m.Required = RequiredSet(props)

	if !c.IsPending(id) {
		return "", fmt.Errorf("%w: %s", ErrCycleGuard, id)
	}
	c.Commit(t, m)
	e.logger.Debug("commit", zap.String("id", id), zap.Int("properties", len(m.Properties)), zap.Strings("required", m.Required))
	return id, nil
}

// propertySchema describes the type of property name on owner.
func (e *Engine) propertySchema(c *Cache, owner typeinfo.Type, name string, t typeinfo.Type) (*model.Schema, error) {
	if t == nil {
		return nil, &ReflectionError{Type: owner.String(), Property: name, Err: errors.New("property has no type")}
	}
	switch {
	case IsEnum(t):
		return EnumSchema(t), nil
	case IsPrimitive(t):
		p, _ := t.Primitive()
		return LeafSchema(p), nil
	case IsContainer(t):
		return e.containerSchema(c, owner, name, t)
	case IsClassProperty(t):
		id, err := e.resolve(c, t)
		if err != nil {
			return nil, err
		}
		return model.Ref(id), nil
	}
	return nil, &ReflectionError{Type: owner.String(), Property: name, Err: fmt.Errorf("%w: cannot classify %s", typeinfo.ErrUnsupported, t)}
}

func (e *Engine) containerSchema(c *Cache, owner typeinfo.Type, name string, t typeinfo.Type) (*model.Schema, error) {
	kind := model.KindArray
	if t.Container() == typeinfo.ContainerMap {
		kind = model.KindObject
	}
	s := &model.Schema{Kind: kind}
	if e.containers == ContainerOpaque {
		return s, nil
	}
	elem, err := t.Elem()
	if err != nil {
		return nil, &ReflectionError{Type: owner.String(), Property: name, Err: err}
	}
	inner, err := e.propertySchema(c, owner, name, elem)
	if err != nil {
		return nil, err
	}
	if kind == model.KindArray {
		s.Items = inner
	} else {
		s.AdditionalProperties = inner
	}
	return s, nil
}
