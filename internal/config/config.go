// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jonathan/resume-export/internal/pdf"
	"github.com/jonathan/resume-export/internal/pipeline"
)

// Config represents settings that can be loaded from a JSON or YAML file.
// All fields are optional; command-line flags take precedence.
type Config struct {
	// Paths
	Input    string `json:"input,omitempty" yaml:"input,omitempty"`       // Resume JSON file
	OutDir   string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`   // Export directory
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // HTML template

	// Export
	Formats   string `json:"formats,omitempty" yaml:"formats,omitempty"`       // "all" or comma-separated list
	Summary   string `json:"summary,omitempty" yaml:"summary,omitempty"`       // Summary key
	Role      string `json:"role,omitempty" yaml:"role,omitempty"`             // Role target key
	ASCII     bool   `json:"ascii,omitempty" yaml:"ascii,omitempty"`           // Sanitize txt/csv output
	PDFEngine string `json:"pdf_engine,omitempty" yaml:"pdf_engine,omitempty"` // exec, cdp or rod

	// Browser
	ChromePath string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"` // Checked before CHROME_PATH

	// Server
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed progress
}

// ConfigError represents an unreadable or invalid configuration file
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		OutDir:    "out",
		Formats:   "all",
		Summary:   "default",
		Role:      "staffplus",
		PDFEngine: pdf.EngineExec,
		Host:      "127.0.0.1",
		Port:      3000,
	}
}

// LoadConfig loads configuration from a JSON file, or from YAML when the
// file ends in .yaml or .yml. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &ConfigError{Message: "config path is empty"}
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("failed to read config file %s", path),
			Cause:   err,
		}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, &ConfigError{Message: "failed to parse config YAML", Cause: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, &ConfigError{Message: "failed to parse config JSON", Cause: err}
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return &ConfigError{Message: fmt.Sprintf("'port' must be between 1 and 65535, got %d", c.Port)}
	}

	if c.Formats != "" {
		if _, err := pipeline.ParseFormats(c.Formats); err != nil {
			return &ConfigError{Message: "'formats' is invalid", Cause: err}
		}
	}

	if c.PDFEngine != "" {
		if _, err := pdf.NewEngine(c.PDFEngine); err != nil {
			return &ConfigError{Message: "'pdf_engine' is invalid", Cause: err}
		}
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return &ConfigError{Message: fmt.Sprintf("template file not found: %s", c.Template)}
		}
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return &ConfigError{Message: fmt.Sprintf("input file not found: %s", c.Input)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Formats == "" {
		result.Formats = defaults.Formats
	}
	if result.Summary == "" {
		result.Summary = defaults.Summary
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.PDFEngine == "" {
		result.PDFEngine = defaults.PDFEngine
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Host == "" {
		result.Host = defaults.Host
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
