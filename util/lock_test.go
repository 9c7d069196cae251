package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLockRoot_Exclusive(t *testing.T) {
	root := t.TempDir()

	first, err := LockRoot(root)
	if err != nil {
		t.Fatalf("first LockRoot failed: %v", err)
	}

	if _, err := LockRoot(root); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}
	if _, err := LockRoot(root + string(filepath.Separator)); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked for an equivalent spelling, got %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	again, err := LockRoot(root)
	if err != nil {
		t.Fatalf("LockRoot after Unlock failed: %v", err)
	}
	again.Unlock()
}

func TestLockRoot_IndependentRoots(t *testing.T) {
	a, err := LockRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Unlock()

	b, err := LockRoot(t.TempDir())
	if err != nil {
		t.Fatalf("locking a different root should succeed: %v", err)
	}
	defer b.Unlock()
}

func TestLockRoot_CreatesNothing(t *testing.T) {
	root := t.TempDir()
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	lock, err := LockRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if lock.Path() != root {
		t.Errorf("Path() = %q, want %q", lock.Path(), root)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{tmp, root} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("locking left %d entries in %s", len(entries), dir)
		}
	}
}

func TestLockRoot_MissingRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "missing")

	if _, err := LockRoot(root); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := os.Stat(root); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LockRoot created %s", root)
	}
	if entries, _ := os.ReadDir(parent); len(entries) != 0 {
		t.Errorf("LockRoot left %d entries in the parent", len(entries))
	}
}
