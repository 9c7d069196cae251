package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RootLock is an exclusive advisory lock held for one root directory.
type RootLock struct {
	fl *flock.Flock
}

// LockRoot takes the lock for root without blocking. The lock is placed on
// the directory itself, opened read-only, so taking it never creates a file.
// It returns ErrLocked when another holder already has it, and the open
// error (for example fs.ErrNotExist) when root cannot be opened.
func LockRoot(root string) (*RootLock, error) {
	fl := flock.New(filepath.Clean(root), flock.SetFlag(os.O_RDONLY))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", root, err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &RootLock{fl: fl}, nil
}

// Path returns the locked directory.
func (l *RootLock) Path() string {
	return l.fl.Path()
}

// Unlock releases the lock.
func (l *RootLock) Unlock() error {
	return l.fl.Unlock()
}
