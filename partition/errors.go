package partition

import (
	"errors"
	"fmt"

	"github.com/dendrascience/dirsplit/util"
)

// Sentinel errors for package partition.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMissingRoot          = errors.New("root path is not set")
	ErrInvalidChunk         = errors.New("chunk size must be a positive integer")
	ErrMissingOrder         = errors.New("order function is not set")
	ErrMissingNamer         = errors.New("directory name function is not set")

	// Lookup errors
	ErrUnknownOrder  = errors.New("unknown order")
	ErrUnknownNaming = errors.New("unknown naming")

	// Destination errors
	ErrInvalidDirName = errors.New("directory name must be a single path segment")
)

// InvalidConfigurationError reports a Builder that cannot produce a
// Partitioner. Nothing on disk has been touched when it is returned.
type InvalidConfigurationError struct {
	Field string
	Err   error
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
}

func (e *InvalidConfigurationError) Unwrap() error { return e.Err }

// Is matches ErrInvalidConfiguration in addition to the wrapped cause.
func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// DirectoryAccessError reports that the root could not be listed or locked.
// No file has been moved when it is returned.
type DirectoryAccessError struct {
	Root string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("access directory %s: %v", e.Root, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// DestinationConflictError reports a chunk whose destination cannot be used:
// the path exists but is not a directory, the name is not a single path
// segment, or the directory could not be created. Chunks before Index have
// been relocated; Index and later chunks have not.
type DestinationConflictError struct {
	Index int
	Path  string
	Err   error
}

func (e *DestinationConflictError) Error() string {
	return fmt.Sprintf("chunk %d: destination %s: %v", e.Index, e.Path, e.Err)
}

func (e *DestinationConflictError) Unwrap() error { return e.Err }

// RelocationError reports a file that could not be moved. Files moved before
// it stay where they were moved to.
type RelocationError struct {
	Source      string
	Destination string
	Err         error
}

func (e *RelocationError) Error() string {
	if e.CrossDevice() {
		return fmt.Sprintf("move %s to %s: source and destination are on different volumes: %v", e.Source, e.Destination, e.Err)
	}
	return fmt.Sprintf("move %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }

// CrossDevice reports whether the move failed because it would have crossed
// a filesystem boundary.
func (e *RelocationError) CrossDevice() bool {
	return util.IsCrossDevice(e.Err)
}
