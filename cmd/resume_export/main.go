// Package main provides the resume_export command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
