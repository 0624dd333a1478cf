// Package cli provides the routesum command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// NewRootCmd creates the root cobra command for routesum.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routesum",
		Short: "Summarize vehicle routing pipeline results",
		Long: `routesum - reconcile and summarize routing pipeline results

Reads an ACS + RVND result file, normalizes its iteration logs and
aggregates distance and cost per depot.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newSummarizeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
