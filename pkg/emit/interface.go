// Package emit writes synthesized models to their output formats and drives a complete
// config-based generation run.
package emit

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/model"
)

// Emitter defines the interface for output writers
type Emitter interface {
	// Emit writes one output from the merged document and the synthesized models
	Emit(out config.Output, doc *openapi3.T, models []*model.Model) error
	// GetType returns the type identifier for this emitter (e.g., "openapi-yaml")
	GetType() string
}

// Registry manages available emitters
type Registry struct {
	emitters map[string]Emitter
}

// NewRegistry creates a new emitter registry
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]Emitter),
	}
}

// DefaultRegistry returns a registry with the built-in emitters
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewDocumentEmitter("json"))
	r.Register(NewDocumentEmitter("yaml"))
	r.Register(NewMarkdownEmitter())
	return r
}

// Register adds an emitter to the registry
func (r *Registry) Register(e Emitter) {
	r.emitters[e.GetType()] = e
}

// Get retrieves an emitter by type
func (r *Registry) Get(emitterType string) (Emitter, bool) {
	e, exists := r.emitters[emitterType]
	return e, exists
}

// GetAvailableTypes returns all registered emitter types, sorted
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.emitters))
	for t := range r.emitters {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
