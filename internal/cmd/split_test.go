package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/dirsplit/partition"
)

func TestSplitCommand(t *testing.T) {
	dir := makeFlatDir(t, "0.tmp", "1.tmp", "2.tmp", "3.tmp", "4.tmp")

	out, _, err := runCLI(t, dir, "-c", "2")
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if !strings.Contains(out, "Moved 5 files into 3 directories") {
		t.Errorf("unexpected output: %q", out)
	}

	for name, want := range map[string]int{"0": 2, "1": 2, "2": 1} {
		if got := countFiles(t, filepath.Join(dir, name)); got != want {
			t.Errorf("directory %s holds %d files, want %d", name, got, want)
		}
	}
	if got := countFiles(t, dir); got != 0 {
		t.Errorf("%d files left in root", got)
	}
}

func TestSplitCommand_DryRun(t *testing.T) {
	dir := makeFlatDir(t, "a1", "a2", "a10")

	out, _, err := runCLI(t, dir, "--chunk", "2", "--dry-run")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	for _, want := range []string{"chunk", "directory", "a1", "a10", "dry run"} {
		if !strings.Contains(strings.ToLower(out), want) {
			t.Errorf("dry-run output missing %q:\n%s", want, out)
		}
	}
	if got := countFiles(t, dir); got != 3 {
		t.Errorf("dry run moved files: %d left in root", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "0")); !os.IsNotExist(err) {
		t.Error("dry run created a directory")
	}
}

func TestSplitCommand_OrderAndNamingFlags(t *testing.T) {
	dir := makeFlatDir(t, "1", "2", "3", "4")

	if _, _, err := runCLI(t, dir, "-c", "2", "--reverse", "--naming", "padded", "--width", "3"); err != nil {
		t.Fatalf("split failed: %v", err)
	}
	for _, path := range []string{"000/4", "000/3", "001/2", "001/1"} {
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("expected %s: %v", path, err)
		}
	}
}

func TestSplitCommand_ConfigFile(t *testing.T) {
	dir := makeFlatDir(t, "x", "y", "z")
	cfgPath := filepath.Join(t.TempDir(), "dirsplit.toml")
	if err := os.WriteFile(cfgPath, []byte("[split]\nchunk = 1\nnaming = \"alpha\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, "--config", cfgPath, dir); err != nil {
		t.Fatalf("split failed: %v", err)
	}
	for _, name := range []string{"a", "b", "c"} {
		if got := countFiles(t, filepath.Join(dir, name)); got != 1 {
			t.Errorf("directory %s holds %d files, want 1", name, got)
		}
	}
}

func TestSplitCommand_FlagOverridesConfig(t *testing.T) {
	dir := makeFlatDir(t, "x", "y", "z")
	cfgPath := filepath.Join(t.TempDir(), "dirsplit.toml")
	if err := os.WriteFile(cfgPath, []byte("[split]\nchunk = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, "--config", cfgPath, "-c", "3", dir); err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if got := countFiles(t, filepath.Join(dir, "0")); got != 3 {
		t.Errorf("directory 0 holds %d files, want 3", got)
	}
}

func TestSplitCommand_Errors(t *testing.T) {
	t.Run("zero chunk", func(t *testing.T) {
		dir := makeFlatDir(t, "a")
		_, _, err := runCLI(t, dir, "-c", "0")
		if !errors.Is(err, partition.ErrInvalidConfiguration) {
			t.Fatalf("expected invalid configuration, got %v", err)
		}
		if got := countFiles(t, dir); got != 1 {
			t.Error("files moved despite invalid configuration")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, _, err := runCLI(t, filepath.Join(t.TempDir(), "nope"))
		var accessErr *partition.DirectoryAccessError
		if !errors.As(err, &accessErr) {
			t.Fatalf("expected DirectoryAccessError, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		_, _, err := runCLI(t, t.TempDir(), "--order", "random")
		if !errors.Is(err, partition.ErrUnknownOrder) {
			t.Fatalf("expected ErrUnknownOrder, got %v", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, _, err := runCLI(t); err == nil {
			t.Fatal("expected an error without PATH")
		}
	})
}

func TestSplitCommand_SymlinkDestination(t *testing.T) {
	dir := makeFlatDir(t, "a", "b")
	target := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "0")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, _, err := runCLI(t, dir)
	var conflict *partition.DestinationConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected DestinationConflictError, got %v", err)
	}
	if got := countFiles(t, dir); got != 2 {
		t.Errorf("%d files left in PATH, want 2", got)
	}
	if entries, _ := os.ReadDir(target); len(entries) != 0 {
		t.Errorf("files moved through the symlink: %d entries", len(entries))
	}

	help, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(help, "symlink where a numbered directory would go is a conflict") {
		t.Errorf("help does not describe symlink conflicts:\n%s", help)
	}
}

func TestSplitCommand_LogsToStderr(t *testing.T) {
	dir := makeFlatDir(t, "a", "b")

	out, errOut, err := runCLI(t, "--log-format", "json", "--log-level", "debug", dir)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, `"msg"`) {
		t.Errorf("log lines leaked to stdout: %q", out)
	}
	for _, want := range []string{`"msg":"splitting directory"`, `"run":`, `"msg":"chunk relocated"`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %s:\n%s", want, errOut)
		}
	}
}
