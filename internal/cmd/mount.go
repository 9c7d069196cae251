package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/dirsplit/flatview"
	"github.com/dendrascience/dirsplit/version"
	"github.com/spf13/cobra"
)

// NewMountCmd creates and returns the mount subcommand for the dirsplit CLI.
// It serves a read-only flat view of a split directory over FUSE.
func NewMountCmd(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mount ROOT MOUNTPOINT",
		Short: "Mount a flat, read-only view of a split directory",
		Long: `Mount a read-only view of ROOT at MOUNTPOINT in which every file from
ROOT's chunk directories appears side by side, as if the directory had
never been split.

ROOT is a directory previously split by dirsplit.
MOUNTPOINT is an empty directory outside ROOT.

When two chunks hold files with the same name, the one in the lower
numbered chunk is shown. The view is served until interrupted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMount(cmd, ctx, args[0], args[1])
		},
	}
}

func runMount(cmd *cobra.Command, ctx *commandContext, root, mountpoint string) error {
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("mount root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("mount root %s is not a directory", root)
	}
	if pathsOverlap(root, mountpoint) {
		return fmt.Errorf("mountpoint %s overlaps root %s", mountpoint, root)
	}

	filesystem := flatview.NewFS(root, logger)
	if err := filesystem.Refresh(); err != nil {
		return fmt.Errorf("index %s: %w", root, err)
	}

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("dirsplit"),
		fuse.Subtype("flatview"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		logger.Info("received interrupt signal, unmounting", "mountpoint", mountpoint)
		if err := fuse.Unmount(mountpoint); err != nil {
			logger.Error("unmount failed", "mountpoint", mountpoint, "error", err)
		}
	}()

	logger.Info("flat view mounted",
		"version", version.GetVersion(),
		"root", root,
		"mountpoint", mountpoint,
		"files", filesystem.Len(),
		"hidden_duplicates", filesystem.Collisions(),
	)
	if err := fs.Serve(c, filesystem); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// pathsOverlap reports whether one path is equal to or nested inside the
// other. Relative paths are resolved against the working directory.
func pathsOverlap(path1, path2 string) bool {
	a, err := filepath.Abs(path1)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(path2)
	if err != nil {
		return false
	}
	return within(a, b) || within(b, a)
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
