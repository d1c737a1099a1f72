package emit

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/naming"
	"github.com/blimu-dev/schemagen/pkg/openapi"
	"github.com/blimu-dev/schemagen/pkg/synth"
	"github.com/blimu-dev/schemagen/pkg/typegraph"
)

// Result is the outcome of synthesizing a configuration
type Result struct {
	// Document is the base document (or a new one) with the models merged in
	Document *openapi3.T
	// Models holds the base document's models followed by the synthesized ones
	Models []*model.Model
	// Synthesized lists the ids of the models derived from the configured types
	Synthesized []string
}

// Service provides config-driven synthesis and output
type Service struct {
	registry *Registry
	logger   *zap.Logger
}

// NewService creates a new service with the default emitters
func NewService(logger *zap.Logger) *Service {
	return NewServiceWithRegistry(DefaultRegistry(), logger)
}

// NewServiceWithRegistry creates a new service with a custom registry
func NewServiceWithRegistry(registry *Registry, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: registry, logger: logger}
}

// GetRegistry returns the emitter registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// Synthesize builds the configured type graph, synthesizes its roots against the models of the
// base document and merges the result into that document.
func (s *Service) Synthesize(cfg *config.Config) (*Result, error) {
	convention, err := naming.Lookup(cfg.Naming)
	if err != nil {
		return nil, err
	}
	containers, err := synth.ParseContainerMode(cfg.Containers)
	if err != nil {
		return nil, err
	}

	var doc *openapi3.T
	if cfg.Base != "" {
		doc, err = openapi.LoadDocument(cfg.Base)
		if err != nil {
			return nil, fmt.Errorf("base document: %w", err)
		}
	} else {
		doc = openapi.NewDocument(cfg.Title, cfg.Version)
	}

	cache, err := synth.NewCache(openapi.KnownModels(doc)...)
	if err != nil {
		return nil, err
	}
	known := cache.Len()

	graph, err := typegraph.Build(cfg.Types)
	if err != nil {
		return nil, err
	}
	roots, err := graph.Roots(cfg.Roots)
	if err != nil {
		return nil, err
	}

	engine := synth.New(synth.WithNaming(convention), synth.WithContainers(containers), synth.WithLogger(s.logger))
	if err := engine.SynthesizeInto(cache, roots...); err != nil {
		return nil, err
	}

	models := cache.Models()
	res := &Result{Document: doc, Models: models}
	for _, m := range models[known:] {
		res.Synthesized = append(res.Synthesized, m.ID)
	}
	s.logger.Info("synthesized models", zap.Int("known", known), zap.Strings("ids", res.Synthesized))

	openapi.Merge(doc, models)
	if err := openapi.Validate(doc); err != nil {
		return nil, fmt.Errorf("merged document is invalid: %w", err)
	}
	return res, nil
}

// GenerateFromConfig synthesizes cfg and writes its outputs. When onlyOutput is set, only
// outputs of that type are written.
func (s *Service) GenerateFromConfig(cfg *config.Config, onlyOutput string) (*Result, error) {
	res, err := s.Synthesize(cfg)
	if err != nil {
		return nil, err
	}
	written := 0
	for _, out := range cfg.Outputs {
		if onlyOutput != "" && out.Type != onlyOutput {
			continue
		}
		emitter, exists := s.registry.Get(out.Type)
		if !exists {
			return nil, fmt.Errorf("unsupported output type: %s", out.Type)
		}
		if err := emitter.Emit(out, res.Document, res.Models); err != nil {
			return nil, fmt.Errorf("output %s: %w", out.Type, err)
		}
		s.logger.Info("wrote output", zap.String("type", out.Type), zap.String("path", out.Path))
		written++
	}
	if onlyOutput != "" && written == 0 {
		return nil, fmt.Errorf("no output of type %s configured", onlyOutput)
	}
	return res, nil
}

// Generate loads the configuration file and generates its outputs
func (s *Service) Generate(configPath, onlyOutput string) (*Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return s.GenerateFromConfig(cfg, onlyOutput)
}
