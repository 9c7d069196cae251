package flatview

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"time"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
	"github.com/dendrascience/dirsplit/util"
)

// FS is a flat, read-only view over a split directory.
type FS struct {
	root string // directory whose chunks are flattened

	inodes *util.InodeAllocator
	logger *slog.Logger

	mu         sync.RWMutex
	files      map[string]fileRef
	names      []string
	collisions int
	built      time.Time
}

var (
	_ fusefs.FS                 = (*FS)(nil)
	_ fusefs.NodeStringLookuper = (*Dir)(nil)
	_ fusefs.HandleReadDirAller = (*Dir)(nil)
	_ fusefs.HandleReadAller    = (*File)(nil)
)

type fileRef struct {
	path  string
	inode uint64
}

// NewFS creates a flat view of root. The index is built on first use.
func NewFS(root string, logger *slog.Logger) *FS {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FS{
		root:   filepath.Clean(root),
		inodes: util.NewInodeAllocator(),
		logger: logger,
		files:  make(map[string]fileRef),
	}
}

// Refresh rebuilds the index from disk.
func (f *FS) Refresh() error {
	top, err := os.ReadDir(f.root)
	if err != nil {
		return err
	}

	files := make(map[string]fileRef)
	collisions := 0
	add := func(dir string, d fs.DirEntry) {
		name := d.Name()
		path := filepath.Join(dir, name)
		if prev, dup := files[name]; dup {
			collisions++
			f.logger.Debug("name collision, keeping first", "name", name, "kept", prev.path, "hidden", path)
			return
		}
		files[name] = fileRef{path: path, inode: f.inodes.ForPath(path)}
	}

	var subdirs []string
	for _, d := range top {
		switch {
		case util.IsRegular(d):
			add(f.root, d)
		case d.IsDir():
			subdirs = append(subdirs, d.Name())
		}
	}
	slices.SortFunc(subdirs, util.NaturalCompare)

	for _, sub := range subdirs {
		dir := filepath.Join(f.root, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			f.logger.Warn("skipping unreadable chunk", "dir", dir, "error", err)
			continue
		}
		for _, d := range entries {
			if util.IsRegular(d) {
				add(dir, d)
			}
		}
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.SortFunc(names, util.NaturalCompare)

	f.mu.Lock()
	f.files = files
	f.names = names
	f.collisions = collisions
	f.built = time.Now()
	f.mu.Unlock()

	f.logger.Debug("flat view refreshed", "root", f.root, "files", len(names), "chunks", len(subdirs), "collisions", collisions)
	return nil
}

// Len returns the number of files in the view.
func (f *FS) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.names)
}

// Collisions returns how many files were hidden by an earlier file of the
// same name during the last refresh.
func (f *FS) Collisions() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.collisions
}

func (f *FS) lookup(name string) (fileRef, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ref, ok := f.files[name]
	return ref, ok
}

func (f *FS) ensureBuilt() error {
	f.mu.RLock()
	built := !f.built.IsZero()
	f.mu.RUnlock()
	if built {
		return nil
	}
	return f.Refresh()
}

// Root returns the root directory node
func (f *FS) Root() (fusefs.Node, error) {
	if err := f.ensureBuilt(); err != nil {
		return nil, err
	}
	return &Dir{fs: f}, nil
}

// Dir is the single directory of the view.
type Dir struct {
	fs *FS
}

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = util.RootInode
	a.Mode = os.ModeDir | 0o555
	if info, err := os.Stat(d.fs.root); err == nil {
		a.Mtime = info.ModTime()
		a.Ctime = info.ModTime()
		a.Atime = info.ModTime()
	}
	return nil
}

// Lookup resolves a file name to its node
func (d *Dir) Lookup(ctx context.Context, name string) (fusefs.Node, error) {
	ref, ok := d.fs.lookup(name)
	if !ok {
		return nil, syscall.ENOENT
	}
	return &File{ref: ref}, nil
}

// ReadDirAll lists every file in the view, rebuilding the index first.
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	if err := d.fs.Refresh(); err != nil {
		return nil, err
	}

	d.fs.mu.RLock()
	defer d.fs.mu.RUnlock()
	dirents := make([]fuse.Dirent, 0, len(d.fs.names))
	for _, name := range d.fs.names {
		dirents = append(dirents, fuse.Dirent{
			Inode: d.fs.files[name].inode,
			Name:  name,
			Type:  fuse.DT_File,
		})
	}
	return dirents, nil
}

// File is a read-only file backed by a file in one of the chunks.
type File struct {
	ref fileRef
}

// Attr returns the attributes of the backing file.
func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	info, err := os.Stat(f.ref.path)
	if err != nil {
		return errnoFor(err)
	}
	a.Inode = f.ref.inode
	a.Mode = 0o444
	a.Size = uint64(info.Size())
	a.Mtime = info.ModTime()
	a.Ctime = info.ModTime()
	a.Atime = info.ModTime()
	return nil
}

// ReadAll reads the entire file content
func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.ref.path)
	if err != nil {
		return nil, errnoFor(err)
	}
	return data, nil
}

// errnoFor maps a file that vanished since the last refresh to ENOENT.
func errnoFor(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return syscall.ENOENT
	}
	return err
}
