package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-export/internal/config"
	"github.com/jonathan/resume-export/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type serveOptions struct {
	host       string
	port       int
	input      string
	summary    string
	role       string
	template   string
	configPath string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTML resume on a local HTTP server",
		Long: `Start a local HTTP server that renders the resume on every request to / or
/index.html. The input file is re-read each time, so edits show up on reload.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(flagError)

	f := cmd.Flags()
	f.StringVar(&opts.host, "host", defaults.Host, "Host to bind")
	f.IntVarP(&opts.port, "port", "p", defaults.Port, "Port to listen on (1-65535)")
	f.StringVarP(&opts.input, "input", "i", "", "Path to the resume JSON (default: resume.json or tjeastmond.json in the current directory)")
	f.StringVar(&opts.summary, "summary", defaults.Summary, "Summary key")
	f.StringVar(&opts.role, "role", defaults.Role, "Role target key used to order skills")
	f.StringVar(&opts.template, "template", "", "Custom HTML template (Go template syntax)")
	f.StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")

	return cmd
}

func applyServeConfig(flags *pflag.FlagSet, cfg config.Config, opts *serveOptions) {
	setString := func(name string, dst *string, value string) {
		if !flags.Changed(name) && value != "" {
			*dst = value
		}
	}
	setString("host", &opts.host, cfg.Host)
	setString("input", &opts.input, cfg.Input)
	setString("summary", &opts.summary, cfg.Summary)
	setString("role", &opts.role, cfg.Role)
	setString("template", &opts.template, cfg.Template)
	if !flags.Changed("port") && cfg.Port != 0 {
		opts.port = cfg.Port
	}
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyServeConfig(cmd.Flags(), cfg, opts)

	if err := server.ValidatePort(opts.port); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	srv := server.New(server.Config{
		Host:         opts.host,
		Port:         opts.port,
		Cwd:          cwd,
		InputPath:    opts.input,
		SummaryKey:   opts.summary,
		RoleKey:      opts.role,
		TemplatePath: opts.template,
	})
	if err := srv.Listen(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nServing resume at: %s\n\n", srv.URL())

	ctx, stop := notifyContext(cmd.Context())
	defer stop()
	return srv.Serve(ctx)
}
