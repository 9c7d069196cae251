package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the dirsplit CLI.
// It generates a flat directory of numbered test files.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a flat directory of test files",
		Long: `Generate a large number of files in a single directory for trying out
dirsplit.

Files are named 0.tmp, 1.tmp, ... and each contains a single UUID line.
Existing files with the same names are overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
			}
			created, err := seedFiles(outputPath, fileCount, func(n int) {
				if verbose && n%1000 == 0 {
					fmt.Fprintf(out, "Created %d/%d files...\n", n, fileCount)
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %d files in %s\n", created, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "n", 10000, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// seedFiles writes count files into dir and returns how many were created.
// progress, when non-nil, is called after each file.
func seedFiles(dir string, count int, progress func(created int)) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("count must not be negative, got %d", count)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	for i := range count {
		path := filepath.Join(dir, fmt.Sprintf("%d.tmp", i))
		if err := os.WriteFile(path, []byte(uuid.NewString()+"\n"), 0o644); err != nil {
			return i, fmt.Errorf("write %s: %w", path, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}
	return count, nil
}
