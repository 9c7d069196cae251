package util

import (
	"sync"
)

// InodeAllocator hands out inode numbers for FUSE nodes. Numbers start above
// the reserved root inode and are never reused for the life of the allocator.
type InodeAllocator struct {
	mu      sync.Mutex
	highest uint64
	byPath  map[string]uint64
}

// RootInode is the inode number FUSE expects for a filesystem root.
const RootInode = 1

// NewInodeAllocator returns an allocator whose first number is RootInode+1.
func NewInodeAllocator() *InodeAllocator {
	return &InodeAllocator{highest: RootInode, byPath: make(map[string]uint64)}
}

// ForPath returns the inode number assigned to path, assigning one the first
// time a path is seen so repeated lookups stay stable.
func (a *InodeAllocator) ForPath(path string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ino, ok := a.byPath[path]; ok {
		return ino
	}
	a.highest++
	a.byPath[path] = a.highest
	return a.highest
}
