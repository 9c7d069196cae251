package cmd

import (
	"fmt"

	"github.com/dendrascience/dirsplit/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config subcommand group.
func NewConfigCmd(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigValidateCmd(ctx))

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Create a sample configuration file",
		Long: `Write a commented sample configuration to PATH, or to
~/.config/dirsplit/config.toml when PATH is omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				target string
				err    error
			)
			if len(args) > 0 {
				target, err = config.ExpandPath(args[0])
			} else {
				target, err = config.DefaultConfigPath()
			}
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if err := config.CreateSample(target, overwrite); err != nil {
				if !overwrite {
					return fmt.Errorf("%w (use --overwrite to replace it)", err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCmd(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			fmt.Fprintf(out, "Chunk: %d, order: %s, naming: %s\n", cfg.Split.Chunk, cfg.Split.Order, cfg.Split.Naming)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
