// Package cmd defines the claw CLI. All flag parsing lives here; the
// session core never sees the command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claw",
		Short: "Terminal chat agent",
		Long:  "claw runs an interactive chat agent in a fixed multi-panel terminal layout.",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
