// Package openapi bridges synthesized models and OpenAPI 3 documents: it loads and
// validates documents, reads their component schemas back as known models, and merges
// synthesized models into them.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
)

// IsRemote reports whether input is an HTTP(S) URL rather than a file path.
func IsRemote(input string) (*url.URL, bool) {
	u, err := url.Parse(input)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, false
	}
	return u, true
}

func newLoader() *openapi3.Loader {
	return &openapi3.Loader{IsExternalRefsAllowed: true, Context: context.Background()}
}

// LoadDocument loads a document from a file or an HTTP(S) URL, resolving external refs.
func LoadDocument(input string) (*openapi3.T, error) {
	return LoadDocumentWithLoader(newLoader(), input)
}

// LoadDocumentWithLoader is LoadDocument with a caller-configured loader.
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*openapi3.T, error) {
	if input == "" {
		return nil, errors.New("no document given")
	}
	var (
		doc *openapi3.T
		err error
	)
	if u, ok := IsRemote(input); ok {
		doc, err = loader.LoadFromURI(u)
	} else {
		doc, err = loader.LoadFromFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}
	return doc, nil
}

// ValidateDocument loads input and validates it.
func ValidateDocument(input string) error {
	loader := newLoader()
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return fmt.Errorf("validate %s: %w", input, err)
	}
	return nil
}

// Validate validates an in-memory document.
func Validate(doc *openapi3.T) error {
	return doc.Validate(context.Background())
}
