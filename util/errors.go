package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Directory errors
	ErrExpectedDirectory = errors.New("exists but is not a directory")

	// Locking errors
	ErrLocked = errors.New("directory is locked by another run")

	// Chunking errors
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)
