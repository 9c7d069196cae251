package cmd

import (
	"github.com/dendrascience/dirsplit/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the dirsplit CLI.
// The root command performs the split itself; everything else is a
// subcommand.
func NewRootCmd() *cobra.Command {
	ctx := &commandContext{}
	opts := &splitOptions{}

	rootCmd := &cobra.Command{
		Use:   "dirsplit PATH",
		Short: "dirsplit - Split a large flat directory into numbered subdirectories",
		Long: `dirsplit moves the regular files directly inside PATH into numbered
subdirectories (0, 1, 2, ...) holding at most --chunk files each.

Files are ordered naturally by name before being grouped, so 2.tmp lands
before 10.tmp. Subdirectories, symlinks and other special files in PATH are
left where they are.

The split is not transactional. If a move fails, the files already moved
stay in their new directories and the command exits with an error. Running
again afterwards only considers the files still directly inside PATH, and
existing directories with the computed names are reused rather than
replaced. A symlink where a numbered directory would go is a conflict, even
when it points at a directory, and stops the split before any file is moved
into it.

Use subcommands for related utilities:
  - count: Show how many files each directory holds
  - seed: Generate a flat directory of test files
  - mount: Mount a read-only flat view of a split directory
  - config: Manage the configuration file
  - version: Show detailed version information`,
		Version: version.GetFullVersion(),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, ctx, opts, args[0])
		},
	}

	opts.register(rootCmd)
	rootCmd.PersistentFlags().StringVar(&ctx.configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormat, "log-format", "", "Log format: console or json")

	groupUtilities := "utilities"
	groupFilesystem := "filesystem"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	mountCmd := NewMountCmd(ctx)
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()
	configCmd := NewConfigCmd(ctx)
	versionCmd := NewVersionCmd()

	mountCmd.GroupID = groupFilesystem
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	configCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
