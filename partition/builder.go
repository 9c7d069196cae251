package partition

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// DefaultChunk is the number of files placed in each destination directory
// when the caller does not choose one. Many tools slow down badly on
// directories with tens of thousands of entries, and ext3 tops out around
// 32000 subdirectories, so keep chunks well below that.
const DefaultChunk = 4400

// Builder accumulates configuration for a Partitioner. The zero value is not
// usable; start from NewBuilder.
type Builder struct {
	root   string
	chunk  int
	order  Order
	name   Namer
	logger *slog.Logger
}

// NewBuilder returns a Builder with the default chunk size, natural name
// order and decimal directory names. The root must still be set.
func NewBuilder() *Builder {
	return &Builder{
		chunk: DefaultChunk,
		order: NaturalOrder,
		name:  DecimalNames,
	}
}

// WithRoot sets the directory whose files are split.
func (b *Builder) WithRoot(root string) *Builder {
	b.root = root
	return b
}

// WithChunk sets the maximum number of files per destination directory.
func (b *Builder) WithChunk(chunk int) *Builder {
	b.chunk = chunk
	return b
}

// WithOrder sets the order files are assigned to chunks in.
func (b *Builder) WithOrder(order Order) *Builder {
	b.order = order
	return b
}

// WithDirectoryName sets how chunk directories are named.
func (b *Builder) WithDirectoryName(name Namer) *Builder {
	b.name = name
	return b
}

// WithLogger sets the logger runs report progress to. Without one, runs are
// silent.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration and returns a ready Partitioner. It does
// not access the filesystem; a missing or unreadable root is only reported
// when the Partitioner runs.
func (b *Builder) Build() (*Partitioner, error) {
	if strings.TrimSpace(b.root) == "" {
		return nil, &InvalidConfigurationError{Field: "root", Err: ErrMissingRoot}
	}
	if b.chunk <= 0 {
		return nil, &InvalidConfigurationError{Field: "chunk", Err: ErrInvalidChunk}
	}
	if b.order == nil {
		return nil, &InvalidConfigurationError{Field: "order", Err: ErrMissingOrder}
	}
	if b.name == nil {
		return nil, &InvalidConfigurationError{Field: "directory_name", Err: ErrMissingNamer}
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Partitioner{
		root:   filepath.Clean(b.root),
		chunk:  b.chunk,
		order:  b.order,
		name:   b.name,
		logger: logger,
	}, nil
}
