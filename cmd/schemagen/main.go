package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/blimu-dev/schemagen/internal/cli"
)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:          "schemagen",
		Short:        "Synthesize OpenAPI component schemas from type graphs",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log synthesis steps")

	root.AddCommand(newGenerateCmd(&verbose))
	root.AddCommand(newTypesCmd(&verbose))
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd(verbose *bool) *cobra.Command {
	var configPath string
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize models and write the configured outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(*verbose)
			defer logger.Sync() //nolint:errcheck
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Output:     output,
				Out:        cmd.OutOrStdout(),
				Logger:     logger,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to schemagen.yaml config")
	cmd.Flags().StringVar(&output, "output", "", "Write only outputs of this type (e.g., openapi-yaml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newTypesCmd(verbose *bool) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the models a config synthesizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(*verbose)
			defer logger.Sync() //nolint:errcheck
			return cli.RunTypes(cli.RunTypesParams{ConfigPath: configPath, Out: cmd.OutOrStdout(), Logger: logger})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to schemagen.yaml config")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI document (yaml/json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
