// Package cmd wires qcheck's bundled demo properties into a small CLI.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kestrel-labs/qcheck/internal/telemetry"
)

const version = "0.1.0"

// rootCmd is the entry point every subcommand attaches to.
var rootCmd = &cobra.Command{
	Use:     "qcheck",
	Version: version,
	Short:   "A property-based testing engine",
	Long:    "qcheck runs generator-driven properties and stateful command sequences, shrinking failures to a minimal counterexample.",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs the CLI, returning any error encountered.
func Execute() error {
	return rootCmd.Execute()
}

// configureLoggingFromVerbosity turns a 0/1/2 verbosity level into the
// zerolog level runs log at, defaulting to disabled so a plain `qcheck run`
// with no flags stays quiet on success.
func configureLoggingFromVerbosity(v int) {
	switch {
	case v >= 2:
		telemetry.Configure(zerolog.DebugLevel, nil)
	case v == 1:
		telemetry.Configure(zerolog.InfoLevel, nil)
	default:
		telemetry.Configure(zerolog.Disabled, nil)
	}
}
