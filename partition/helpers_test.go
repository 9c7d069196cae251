package partition

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// makeFiles creates a regular file for each name under dir holding the name.
func makeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
}

// listFiles returns the sorted names of the regular files directly in dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names
}

// listDirs returns the sorted names of the directories directly in dir.
func listDirs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names
}

func build(t *testing.T, b *Builder) *Partitioner {
	t.Helper()
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func assertFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	slices.Sort(want)
	got := listFiles(t, dir)
	if !slices.Equal(got, want) {
		t.Errorf("files in %s = %v, want %v", dir, got, want)
	}
}
