package main

import (
	"strings"

	"github.com/jonathan/resume-export/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value for --format.
type formatValue struct {
	formats *[]pipeline.Format
	raw     string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(dst *[]pipeline.Format) *formatValue {
	*dst = append([]pipeline.Format(nil), pipeline.AllFormats...)
	return &formatValue{formats: dst, raw: "all"}
}

func (v *formatValue) String() string { return v.raw }

func (v *formatValue) Set(s string) error {
	formats, err := pipeline.ParseFormats(s)
	if err != nil {
		return err
	}
	*v.formats = formats
	v.raw = strings.TrimSpace(s)
	return nil
}

func (v *formatValue) Type() string { return "formats" }

// usageError marks a bad invocation (unknown flag, bad flag value, extra
// arguments).
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func flagError(_ *cobra.Command, err error) error {
	return &usageError{err: err}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}
