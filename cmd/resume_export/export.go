package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-export/internal/config"
	"github.com/jonathan/resume-export/internal/observability"
	"github.com/jonathan/resume-export/internal/pdf"
	"github.com/jonathan/resume-export/internal/pipeline"
	"github.com/jonathan/resume-export/internal/resume"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type exportOptions struct {
	input      string
	outDir     string
	formats    []pipeline.Format
	summary    string
	role       string
	template   string
	ascii      bool
	pdfEngine  string
	configPath string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &exportOptions{}
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "resume_export",
		Short: "Export a resume JSON file to HTML, PDF, text, CSV, YAML and JSON",
		Long: `resume_export validates a resume JSON document and writes it in every requested
format. PDF output prints the HTML rendering with a local Chrome/Chromium
(set CHROME_PATH to choose the browser). Use "resume_export serve" to preview
the HTML rendering in a browser.`,
		Version:       Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(flagError)

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Path to the resume JSON (default: tjeastmond.json or resume.json in the current directory)")
	f.StringVarP(&opts.outDir, "out-dir", "o", defaults.OutDir, "Directory for exported files")
	f.VarP(newFormatValue(&opts.formats), "format", "f", "Formats to export: all or a comma-separated list of "+pipeline.FormatNames())
	f.StringVar(&opts.summary, "summary", defaults.Summary, "Summary key used in the HTML and PDF output")
	f.StringVar(&opts.role, "role", defaults.Role, "Role target key used to order skills")
	f.StringVar(&opts.template, "template", "", "Custom HTML template (Go template syntax)")
	f.BoolVar(&opts.ascii, "ascii", false, "Reduce text and CSV output to plain ASCII")
	f.StringVar(&opts.pdfEngine, "pdf-engine", defaults.PDFEngine, "PDF engine: exec, cdp or rod")
	f.StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed progress")

	cmd.AddCommand(newServeCmd(), newValidateCmd())
	return cmd
}

// loadConfig reads the optional config file and fills unset fields from the
// built-in defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// applyExportConfig copies config values into options whose flags were not
// set on the command line.
func applyExportConfig(flags *pflag.FlagSet, cfg config.Config, opts *exportOptions) error {
	setString := func(name string, dst *string, value string) {
		if !flags.Changed(name) && value != "" {
			*dst = value
		}
	}
	setString("input", &opts.input, cfg.Input)
	setString("out-dir", &opts.outDir, cfg.OutDir)
	setString("summary", &opts.summary, cfg.Summary)
	setString("role", &opts.role, cfg.Role)
	setString("template", &opts.template, cfg.Template)
	setString("pdf-engine", &opts.pdfEngine, cfg.PDFEngine)

	if !flags.Changed("format") && cfg.Formats != "" {
		formats, err := pipeline.ParseFormats(cfg.Formats)
		if err != nil {
			return err
		}
		opts.formats = formats
	}
	if !flags.Changed("ascii") && cfg.ASCII {
		opts.ascii = true
	}
	if !flags.Changed("verbose") && cfg.Verbose {
		opts.verbose = true
	}
	return nil
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyExportConfig(cmd.Flags(), cfg, opts); err != nil {
		return err
	}

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	inputPath, err := resume.ResolveInput(cwd, opts.input, resume.CLIInputCandidates)
	if err != nil {
		return err
	}

	printer.Status("Validating resume JSON: %s", inputPath)
	r, err := resume.Load(inputPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		printer.PrintResume(r)
	}

	engine, err := pdf.NewEngine(opts.pdfEngine)
	if err != nil {
		return &usageError{err: err}
	}
	exporter := pdf.NewExporter(engine)
	exporter.Finder.Override = cfg.ChromePath

	outDir := opts.outDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cwd, outDir)
	}

	runOpts := pipeline.Options{
		InputPath:    inputPath,
		OutDir:       outDir,
		Formats:      opts.formats,
		SummaryKey:   opts.summary,
		RoleKey:      opts.role,
		TemplatePath: opts.template,
		ASCII:        opts.ascii,
		PDF:          exporter,
	}
	if opts.verbose {
		runOpts.OnProgress = printer.PrintProgress
	}

	written, err := pipeline.Run(cmd.Context(), r, runOpts)
	printer.PrintManifest(written)
	return err
}
