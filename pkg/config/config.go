package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/schemagen/pkg/openapi"
)

// Config represents the complete configuration for schema generation
type Config struct {
	// Base is an optional OpenAPI document (file or HTTP(S) URL) the models are merged into.
	// Its component schemas are treated as known models.
	Base    string `yaml:"base"`
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
	// Naming selects the id convention: simple, qualified or pascal
	Naming string `yaml:"naming"`
	// Containers is "expand" (default) or "opaque"
	Containers string    `yaml:"containers"`
	Roots      []string  `yaml:"roots"`
	Types      []TypeDef `yaml:"types"`
	Outputs    []Output  `yaml:"outputs"`
}

// TypeDef declares one named type of the type graph
type TypeDef struct {
	Name    string `yaml:"name"`
	Package string `yaml:"package"`
	// Kind is "object" (default) or "enum"
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	// ValueType gives an object struct semantics: it cannot be absent
	ValueType bool `yaml:"valueType"`
	// Base is the primitive underlying an enum (default string)
	Base       string        `yaml:"base"`
	Values     []any         `yaml:"values"`
	Properties []PropertyDef `yaml:"properties"`
}

// PropertyDef declares one property of an object type
type PropertyDef struct {
	Name string `yaml:"name"`
	// Type is a type expression: a primitive, a declared type name, *T, []T or map[string]T
	Type string `yaml:"type"`
	// Required overrides the implicit value-type rule when set
	Required    *bool  `yaml:"required"`
	Description string `yaml:"description"`
}

// Output configures one emitted artifact
type Output struct {
	// Type is the emitter type (e.g., "openapi-yaml")
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Roots) == 0 {
		return nil, errors.New("config.roots is required")
	}
	if len(cfg.Types) == 0 {
		return nil, errors.New("config.types is required")
	}
	for i, t := range cfg.Types {
		if t.Name == "" {
			return nil, fmt.Errorf("types[%d] missing required field name", i)
		}
		for j, p := range t.Properties {
			if p.Name == "" || p.Type == "" {
				return nil, fmt.Errorf("types[%d].properties[%d] missing required fields (name, type)", i, j)
			}
		}
	}
	if cfg.Title == "" {
		cfg.Title = "API"
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	for i := range cfg.Outputs {
		o := &cfg.Outputs[i]
		if o.Type == "" || o.Path == "" {
			return nil, fmt.Errorf("outputs[%d] missing required fields (type, path)", i)
		}
		if !filepath.IsAbs(o.Path) {
			abs, _ := filepath.Abs(o.Path)
			o.Path = abs
		}
	}
	if cfg.Base != "" && !filepath.IsAbs(cfg.Base) {
		if _, remote := openapi.IsRemote(cfg.Base); !remote {
			abs, _ := filepath.Abs(cfg.Base)
			cfg.Base = abs
		}
	}
	return &cfg, nil
}
