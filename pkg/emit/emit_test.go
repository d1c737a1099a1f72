package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/openapi"
)

const baseDoc = `openapi: 3.0.3
info:
  title: Base API
  version: 2.0.0
paths: {}
components:
  schemas:
    Country:
      type: object
      description: defined elsewhere
      properties:
        code:
          type: string
`

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "schemagen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testConfig(dir string) string {
	return `
title: People
roots: [Person]
types:
  - name: Person
    properties:
      - name: name
        type: string
        required: true
      - name: address
        type: "*Address"
  - name: Address
    properties:
      - name: street
        type: string
      - name: country
        type: Country
  - name: Country
    properties:
      - name: code
        type: string
outputs:
  - type: openapi-yaml
    path: ` + filepath.Join(dir, "out", "openapi.yaml") + `
  - type: openapi-json
    path: ` + filepath.Join(dir, "out", "openapi.json") + `
  - type: markdown
    path: ` + filepath.Join(dir, "out", "models.md") + `
`
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"markdown", "openapi-json", "openapi-yaml"}, r.GetAvailableTypes())

	e, ok := r.Get("openapi-yaml")
	require.True(t, ok)
	assert.Equal(t, "openapi-yaml", e.GetType())

	_, ok = r.Get("typescript")
	assert.False(t, ok)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	res, err := NewService(nil).Generate(writeConfig(t, dir, testConfig(dir)), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Country", "Address", "Person"}, res.Synthesized)

	doc, err := openapi.LoadDocument(filepath.Join(dir, "out", "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "People", doc.Info.Title)
	assert.Len(t, doc.Components.Schemas, 3)
	assert.Equal(t, []string{"name"}, doc.Components.Schemas["Person"].Value.Required)

	assert.NoError(t, openapi.ValidateDocument(filepath.Join(dir, "out", "openapi.json")))

	md, err := os.ReadFile(filepath.Join(dir, "out", "models.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# People")
	assert.Contains(t, string(md), "## Person")
}

func TestGenerateSingleOutput(t *testing.T) {
	dir := t.TempDir()
	_, err := NewService(nil).Generate(writeConfig(t, dir, testConfig(dir)), "markdown")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "out", "models.md"))
	assert.NoFileExists(t, filepath.Join(dir, "out", "openapi.yaml"))

	_, err = NewService(nil).Generate(writeConfig(t, dir, testConfig(dir)), "typescript")
	assert.EqualError(t, err, "no output of type typescript configured")
}

func TestGenerateWithBaseDocument(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	require.NoError(t, os.WriteFile(base, []byte(baseDoc), 0o644))

	res, err := NewService(nil).Generate(writeConfig(t, dir, "base: "+base+"\n"+testConfig(dir)), "openapi-yaml")
	require.NoError(t, err)

	// Country resolves to the base document's schema
	assert.Equal(t, []string{"Address", "Person"}, res.Synthesized)
	assert.Equal(t, "Country", res.Models[0].ID)

	doc, err := openapi.LoadDocument(filepath.Join(dir, "out", "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Base API", doc.Info.Title)
	assert.Equal(t, "defined elsewhere", doc.Components.Schemas["Country"].Value.Description)
	assert.Contains(t, doc.Components.Schemas, "Person")
}

func TestGenerateUnsupportedOutput(t *testing.T) {
	cfg := &config.Config{
		Roots:   []string{"A"},
		Types:   []config.TypeDef{{Name: "A"}},
		Outputs: []config.Output{{Type: "typescript", Path: filepath.Join(t.TempDir(), "a.ts")}},
	}
	_, err := NewService(nil).GenerateFromConfig(cfg, "")
	assert.EqualError(t, err, "unsupported output type: typescript")
}

func TestSynthesizeErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		msg  string
	}{
		{"naming", config.Config{Naming: "camel", Roots: []string{"A"}, Types: []config.TypeDef{{Name: "A"}}}, `unknown naming convention "camel" (available: pascal, qualified, simple)`},
		{"containers", config.Config{Containers: "flat", Roots: []string{"A"}, Types: []config.TypeDef{{Name: "A"}}}, `unknown container mode "flat"`},
		{"root", config.Config{Roots: []string{"B"}, Types: []config.TypeDef{{Name: "A"}}}, `unknown root type "B"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := test.cfg
			cfg.Title, cfg.Version = "API", "1.0.0"
			_, err := NewService(nil).Synthesize(&cfg)
			assert.EqualError(t, err, test.msg)
		})
	}
}
