package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/blimu-dev/schemagen/pkg/config"
	"github.com/blimu-dev/schemagen/pkg/emit"
	"github.com/blimu-dev/schemagen/pkg/openapi"
)

type RunGenerateParams struct {
	ConfigPath string
	// Output restricts generation to outputs of this type
	Output string
	Out    io.Writer
	Logger *zap.Logger
}

type RunTypesParams struct {
	ConfigPath string
	Out        io.Writer
	Logger     *zap.Logger
}

func RunValidate(input string, out io.Writer) error {
	if input == "" {
		return errors.New("--input is required")
	}
	if err := openapi.ValidateDocument(input); err != nil {
		return err
	}
	success(writer(out), "%s is valid", input)
	return nil
}

func RunGenerate(p RunGenerateParams) error {
	if p.ConfigPath == "" {
		return errors.New("--config is required")
	}
	path := absPath(p.ConfigPath)
	res, err := emit.NewService(p.Logger).Generate(path, p.Output)
	if err != nil {
		return err
	}
	success(writer(p.Out), "synthesized %d models (%s)", len(res.Synthesized), strings.Join(res.Synthesized, ", "))
	return nil
}

// RunTypes prints the id of every model in the merged document, marking the synthesized ones.
func RunTypes(p RunTypesParams) error {
	if p.ConfigPath == "" {
		return errors.New("--config is required")
	}
	cfg, err := config.Load(absPath(p.ConfigPath))
	if err != nil {
		return err
	}
	res, err := emit.NewService(p.Logger).Synthesize(cfg)
	if err != nil {
		return err
	}
	synthesized := map[string]bool{}
	for _, id := range res.Synthesized {
		synthesized[id] = true
	}
	w := writer(p.Out)
	for _, m := range res.Models {
		if synthesized[m.ID] {
			fmt.Fprintf(w, "%s\t%d properties\n", m.ID, len(m.Properties))
		} else {
			fmt.Fprintf(w, "%s\t%s\n", m.ID, color.New(color.Faint).Sprint("known"))
		}
	}
	return nil
}
