package cmd

import (
	"fmt"
	"strconv"

	"github.com/dendrascience/dirsplit/partition"
	"github.com/dendrascience/dirsplit/util"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the dirsplit CLI.
// It reports the regular files held by a directory and its immediate
// subdirectories.
func NewCountCmd() *cobra.Command {
	var (
		path  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory and its subdirectories",
		Long: `Count the regular files directly inside PATH and inside each of its
immediate subdirectories.

Use it before a split to see how crowded a directory is, or after one to
check that no chunk exceeds the limit. Directories holding more than
--limit files are flagged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd, path, limit)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().IntVarP(&limit, "limit", "l", partition.DefaultChunk, "Flag directories holding more files than this (0 disables)")

	return cmd
}

func runCount(cmd *cobra.Command, path string, limit int) error {
	counts, err := util.CountSubdirs(path, limit)
	if err != nil {
		return fmt.Errorf("count %s: %w", path, err)
	}

	total, over := 0, 0
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		status := ""
		if c.Over {
			status = "over limit"
			over++
		}
		total += c.Files
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Files), status})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(out, []string{"Directory", "Files", "Status"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft}))
	fmt.Fprintf(out, "Total files: %d\n", total)
	if over > 0 {
		fmt.Fprintf(out, "%d directories exceed %d files\n", over, limit)
	}
	return nil
}
