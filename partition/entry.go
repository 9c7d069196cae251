package partition

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dendrascience/dirsplit/util"
)

// Entry is a regular file found directly inside the root.
type Entry struct {
	Name string // base name, kept when the file is moved
	Path string // full path at enumeration time

	meta *entryMeta
}

type entryMeta struct {
	once   sync.Once
	dirent fs.DirEntry
	info   fs.FileInfo
	err    error
}

func newEntry(root string, d fs.DirEntry) Entry {
	return Entry{
		Name: d.Name(),
		Path: filepath.Join(root, d.Name()),
		meta: &entryMeta{dirent: d},
	}
}

// Info returns the file's metadata. It is read at most once per entry, so
// orderings that compare sizes or times do not stat the same file repeatedly.
func (e Entry) Info() (fs.FileInfo, error) {
	if e.meta == nil {
		return os.Lstat(e.Path)
	}
	e.meta.once.Do(func() {
		if e.meta.dirent == nil {
			e.meta.info, e.meta.err = os.Lstat(e.Path)
			return
		}
		e.meta.info, e.meta.err = e.meta.dirent.Info()
	})
	return e.meta.info, e.meta.err
}

// enumerate lists the regular files directly inside root. The order of the
// result carries no meaning.
func enumerate(root string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if !util.IsRegular(d) {
			continue
		}
		entries = append(entries, newEntry(root, d))
	}
	return entries, nil
}
