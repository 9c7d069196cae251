package cmd

import (
	"github.com/dendrascience/dirsplit/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand, a longer form of
// --version that also shows the commit and build date.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Fprint(cmd.OutOrStdout(), "dirsplit")
		},
	}
}
