package partition

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/dendrascience/dirsplit/util"
	"github.com/google/uuid"
)

// Partitioner splits one root directory. It is built by a Builder and holds
// no state between runs.
type Partitioner struct {
	root   string
	chunk  int
	order  Order
	name   Namer
	logger *slog.Logger
}

// Chunk is one group of files and the directory they are moved to.
type Chunk struct {
	Index   int
	Name    string
	Dir     string
	Entries []Entry
}

// Plan is the assignment of the root's regular files to chunks.
type Plan struct {
	Root      string
	ChunkSize int
	Total     int
	Chunks    []Chunk
}

// Root returns the directory being split.
func (p *Partitioner) Root() string { return p.root }

// ChunkSize returns the maximum number of files per destination directory.
func (p *Partitioner) ChunkSize() int { return p.chunk }

// Plan enumerates, orders and partitions the root without moving anything.
func (p *Partitioner) Plan() (*Plan, error) {
	entries, err := enumerate(p.root)
	if err != nil {
		return nil, &DirectoryAccessError{Root: p.root, Err: err}
	}
	slices.SortStableFunc(entries, p.order)

	plan := &Plan{
		Root:      p.root,
		ChunkSize: p.chunk,
		Total:     len(entries),
	}
	for i, group := range util.Chunk(entries, p.chunk) {
		name := p.name(i)
		plan.Chunks = append(plan.Chunks, Chunk{
			Index:   i,
			Name:    name,
			Dir:     filepath.Join(p.root, name),
			Entries: group,
		})
	}
	return plan, nil
}

// Run splits the root and returns the plan it carried out. On failure the
// plan is returned alongside the error when one was made, and chunks before
// the failing one have been fully relocated.
func (p *Partitioner) Run() (*Plan, error) {
	log := p.logger.With("run", uuid.NewString(), "root", p.root)

	lock, err := util.LockRoot(p.root)
	if err != nil {
		return nil, &DirectoryAccessError{Root: p.root, Err: err}
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("release lock failed", "lock", lock.Path(), "error", err)
		}
	}()

	plan, err := p.Plan()
	if err != nil {
		return nil, err
	}
	log.Info("splitting directory", "files", plan.Total, "chunks", len(plan.Chunks), "chunk_size", p.chunk)

	for _, c := range plan.Chunks {
		if err := p.relocate(log, c); err != nil {
			log.Error("split stopped", "chunk", c.Index, "error", err)
			return plan, err
		}
	}

	log.Info("split complete", "files", plan.Total, "chunks", len(plan.Chunks))
	return plan, nil
}

// Execute splits the root, reporting only success or failure.
func (p *Partitioner) Execute() error {
	_, err := p.Run()
	return err
}

func (p *Partitioner) relocate(log *slog.Logger, c Chunk) error {
	if err := validateDirName(c.Name); err != nil {
		return &DestinationConflictError{Index: c.Index, Path: c.Dir, Err: err}
	}

	created, err := ensureDir(c.Dir)
	if err != nil {
		return &DestinationConflictError{Index: c.Index, Path: c.Dir, Err: err}
	}
	if !created {
		log.Warn("reusing existing directory", "chunk", c.Index, "dir", c.Dir)
	}

	for _, e := range c.Entries {
		dst := filepath.Join(c.Dir, e.Name)
		if err := os.Rename(e.Path, dst); err != nil {
			return &RelocationError{Source: e.Path, Destination: dst, Err: err}
		}
	}
	log.Debug("chunk relocated", "chunk", c.Index, "dir", c.Dir, "files", len(c.Entries))
	return nil
}

// ensureDir makes sure path is a directory, creating it when absent. A
// symlink is not followed and counts as a conflict like any other
// non-directory.
func ensureDir(path string) (created bool, err error) {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, util.ErrExpectedDirectory
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return false, err
	}
	return true, nil
}
