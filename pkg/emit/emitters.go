package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/docs"
	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/openapi"
)

// DocumentEmitter writes the merged OpenAPI document
type DocumentEmitter struct {
	format string
}

// NewDocumentEmitter creates an emitter for "json" or "yaml" documents
func NewDocumentEmitter(format string) *DocumentEmitter {
	return &DocumentEmitter{format: format}
}

// GetType returns "openapi-json" or "openapi-yaml"
func (e *DocumentEmitter) GetType() string {
	return "openapi-" + e.format
}

func (e *DocumentEmitter) Emit(out config.Output, doc *openapi3.T, _ []*model.Model) error {
	data, err := openapi.Marshal(doc, e.format)
	if err != nil {
		return err
	}
	return writeFile(out.Path, data)
}

// MarkdownEmitter writes a Markdown reference of the models
type MarkdownEmitter struct{}

// NewMarkdownEmitter creates a new Markdown emitter
func NewMarkdownEmitter() *MarkdownEmitter {
	return &MarkdownEmitter{}
}

// GetType returns the emitter type identifier
func (e *MarkdownEmitter) GetType() string {
	return "markdown"
}

func (e *MarkdownEmitter) Emit(out config.Output, doc *openapi3.T, models []*model.Model) error {
	title := "Models"
	if doc != nil && doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}
	var buf bytes.Buffer
	if err := docs.Render(&buf, title, models); err != nil {
		return err
	}
	return writeFile(out.Path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
