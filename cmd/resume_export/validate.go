package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-export/internal/resume"
	"github.com/jonathan/resume-export/internal/schemas"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	input      string
	schemaPath string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a resume JSON file without exporting it",
		Long: `Validate runs the same checks as an export and writes nothing. With --schema
the file is checked against that JSON Schema file instead of the built-in
resume schema, for example schemas/resume.schema.json while editing it.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(flagError)

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Path to the resume JSON (default: tjeastmond.json or resume.json in the current directory)")
	f.StringVar(&opts.schemaPath, "schema", "", "JSON Schema file to validate against")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	inputPath, err := resume.ResolveInput(cwd, opts.input, resume.CLIInputCandidates)
	if err != nil {
		return err
	}

	if opts.schemaPath != "" {
		if err := schemas.ValidateJSON(opts.schemaPath, inputPath); err != nil {
			return err
		}
	} else if _, err := resume.Load(inputPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", inputPath)
	return nil
}
