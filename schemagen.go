// Package schemagen synthesizes schema models from Go types and declarative type graphs and
// publishes them as OpenAPI component schemas.
//
// Quick Start:
//
//	import "github.com/blimu-dev/schemagen"
//
//	type Address struct {
//		Street string `json:"street"`
//	}
//
//	type Person struct {
//		Name    string   `json:"name" schema:"required"`
//		Address *Address `json:"address"`
//	}
//
//	// Address, then Person
//	models, err := schemagen.Reflect(Person{})
//
// Every nested struct becomes a model of its own that the parent references by id. Models are
// returned after the models they reference, properties are sorted by name, and cycles are
// broken by reference.
//
// For config-driven generation see GenerateFromConfig and the emit package.
package schemagen

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/schemagen/pkg/emit"
	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/openapi"
	"github.com/blimu-dev/schemagen/pkg/synth"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// Reflect synthesizes the models of the Go type of v. Pointers are dereferenced.
//
// Example:
//
//	models, err := schemagen.Reflect(&Order{}, synth.WithNaming(naming.Qualified))
func Reflect(v any, opts ...synth.Option) ([]*model.Model, error) {
	return synth.New(opts...).Synthesize(typeinfo.TypeOf(v))
}

// ReflectAll synthesizes the models of several Go types in one run. Types shared between the
// roots are synthesized once.
func ReflectAll(values []any, opts ...synth.Option) ([]*model.Model, error) {
	cache, err := synth.NewCache()
	if err != nil {
		return nil, err
	}
	roots := make([]typeinfo.Type, 0, len(values))
	for _, v := range values {
		roots = append(roots, typeinfo.TypeOf(v))
	}
	if err := synth.New(opts...).SynthesizeInto(cache, roots...); err != nil {
		return nil, err
	}
	return cache.Models(), nil
}

// Components returns the OpenAPI component schemas of the Go types of values.
//
// Example:
//
//	schemas, err := schemagen.Components(Person{}, Order{})
//	doc.Components.Schemas = schemas
func Components(values ...any) (openapi3.Schemas, error) {
	models, err := ReflectAll(values)
	if err != nil {
		return nil, err
	}
	return openapi.Components(models), nil
}

// GenerateFromConfig synthesizes the type graph of a YAML configuration file and writes its
// outputs. Optionally, an output type restricts generation to outputs of that type.
//
// Example:
//
//	// Write every configured output
//	err := schemagen.GenerateFromConfig("./schemagen.yaml")
//
//	// Only the markdown reference
//	err = schemagen.GenerateFromConfig("./schemagen.yaml", "markdown")
func GenerateFromConfig(configPath string, output ...string) error {
	only := ""
	if len(output) > 0 {
		only = output[0]
	}
	_, err := emit.NewService(nil).Generate(configPath, only)
	return err
}

// ValidateSpec validates an OpenAPI document without generating anything.
func ValidateSpec(spec string) error {
	return openapi.ValidateDocument(spec)
}
