package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dendrascience/dirsplit/internal/config"
	"github.com/dendrascience/dirsplit/partition"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	chunk   int
	order   string
	reverse bool
	naming  string
	width   int
	dryRun  bool
}

func (o *splitOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&o.chunk, "chunk", "c", partition.DefaultChunk, "Maximum number of files per directory")
	flags.StringVar(&o.order, "order", "natural", "File order: natural, lexical, size, mtime or hash")
	flags.BoolVar(&o.reverse, "reverse", false, "Reverse the file order")
	flags.StringVar(&o.naming, "naming", "decimal", "Directory naming: decimal, padded or alpha")
	flags.IntVar(&o.width, "width", 4, "Digits used by padded naming")
	flags.BoolVar(&o.dryRun, "dry-run", false, "Print the plan without moving anything")
}

// merge overlays the flags the user actually set on top of the config file.
func (o *splitOptions) merge(cmd *cobra.Command, s config.Split) config.Split {
	flags := cmd.Flags()
	if flags.Changed("chunk") {
		s.Chunk = o.chunk
	}
	if flags.Changed("order") {
		s.Order = o.order
	}
	if flags.Changed("reverse") {
		s.Reverse = o.reverse
	}
	if flags.Changed("naming") {
		s.Naming = o.naming
	}
	if flags.Changed("width") {
		s.Width = o.width
	}
	return s
}

func runSplit(cmd *cobra.Command, ctx *commandContext, opts *splitOptions, root string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings := opts.merge(cmd, cfg.Split)

	order, err := partition.OrderNamed(settings.Order)
	if err != nil {
		return err
	}
	if settings.Reverse {
		order = partition.Reverse(order)
	}
	namer, err := partition.NamerNamed(settings.Naming, settings.Width)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	p, err := partition.NewBuilder().
		WithRoot(root).
		WithChunk(settings.Chunk).
		WithOrder(order).
		WithDirectoryName(namer).
		WithLogger(logger).
		Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		plan, err := p.Plan()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderPlan(out, plan))
		fmt.Fprintf(out, "%d files would be moved into %d directories (dry run)\n", plan.Total, len(plan.Chunks))
		return nil
	}

	plan, err := p.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Moved %d files into %d directories under %s\n", plan.Total, len(plan.Chunks), plan.Root)
	return nil
}

func renderPlan(w io.Writer, plan *partition.Plan) string {
	rows := make([][]string, 0, len(plan.Chunks))
	for _, c := range plan.Chunks {
		first, last := "", ""
		if n := len(c.Entries); n > 0 {
			first, last = c.Entries[0].Name, c.Entries[n-1].Name
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Index),
			c.Name,
			strconv.Itoa(len(c.Entries)),
			first,
			last,
		})
	}
	return renderTable(w,
		[]string{"Chunk", "Directory", "Files", "First", "Last"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
	)
}
