// Package util provides the helpers shared by the dirsplit partitioner, the
// flat view filesystem, and the CLI.
//
// Key Components:
//
// Ordering Support:
//   - NaturalCollator compares names with digit runs ordered by numeric value
//     and the remaining text ordered by locale collation
//   - NameHash gives a stable pseudo-random key for scattering names
//
// Directory Inspection:
//   - CountDirFiles counts the regular files directly inside a directory,
//     stopping early once a limit is exceeded
//
// Slices:
//   - Chunk splits a slice into contiguous groups of a fixed maximum size
//
// Run Safety:
//   - LockRoot takes an exclusive advisory lock on a root directory itself so two
//     runs never relocate the same files concurrently
//   - IsCrossDevice recognizes rename failures caused by crossing volumes
//
// Inodes:
//   - InodeAllocator hands out unique inode numbers for FUSE nodes
package util
