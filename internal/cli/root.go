// Package cli implements the emberforge command line interface.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "emberforge",
	Short:         "Tabletop game data toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
