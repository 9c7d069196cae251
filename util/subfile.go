package util

import (
	"os"
	"path/filepath"
)

// CountDirFiles counts the regular files directly inside path. Entries whose
// type cannot be determined are not counted. When limit is positive, counting
// stops as soon as the count exceeds it and over is reported as true.
func CountDirFiles(path string, limit int) (count int, over bool, err error) {
	var info os.FileInfo
	info, err = os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = ErrExpectedDirectory
		return
	}
	var files []os.DirEntry
	files, err = os.ReadDir(path)
	if err != nil {
		return
	}
	for _, f := range files {
		if !IsRegular(f) {
			continue
		}
		count++
		if limit > 0 && count > limit {
			return count, true, nil
		}
	}
	return
}

// IsRegular reports whether d is a regular file. Symlinks, directories and
// special files are not.
func IsRegular(d os.DirEntry) bool {
	return d != nil && d.Type().IsRegular()
}

// SubdirCount is the regular file count of a single directory.
type SubdirCount struct {
	Name  string
	Path  string
	Files int
	Over  bool
}

// CountSubdirs counts regular files in path itself and in each of its
// immediate subdirectories. The first element describes path.
func CountSubdirs(path string, limit int) ([]SubdirCount, error) {
	count, _, err := CountDirFiles(path, 0)
	if err != nil {
		return nil, err
	}
	counts := []SubdirCount{{Name: ".", Path: path, Files: count, Over: limit > 0 && count > limit}}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(path, e.Name())
		c, _, err := CountDirFiles(sub, 0)
		if err != nil {
			return nil, err
		}
		counts = append(counts, SubdirCount{Name: e.Name(), Path: sub, Files: c, Over: limit > 0 && c > limit})
	}
	return counts, nil
}
