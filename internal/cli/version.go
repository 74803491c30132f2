package cli

import (
	"github.com/spf13/cobra"

	"github.com/emberforge/emberforge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("emberforge v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
