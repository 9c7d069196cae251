// Package partition splits a flat directory holding very many files into
// numbered subdirectories of a bounded size.
//
// A run has four stages:
//   - Enumerate: list the immediate children of the root and keep the regular
//     files. Directories, symlinks and special files are never touched.
//   - Order: stable-sort the files with an injected Order (natural name order
//     by default, so 2.tmp sorts before 10.tmp).
//   - Partition: cut the ordered files into contiguous chunks of at most the
//     configured chunk size (4400 by default).
//   - Relocate: for chunk i, create root/Namer(i) if it does not exist and
//     rename every file of the chunk into it, keeping its base name.
//
// Configuration is accumulated in a Builder and validated once by Build,
// which never touches the filesystem. The resulting Partitioner is immutable.
//
// Runs are not transactional. When a run fails part way, files that were
// already moved stay in their chunk directory and the rest stay in the root;
// every file is in exactly one of the two places because relocation is a
// rename, never a copy. Running again after success is a no-op because only
// files left directly in the root are enumerated. Running again after a
// failure starts numbering at 0 again and reuses existing chunk directories.
//
// Existing directories whose name matches a chunk are reused, including ones
// created by hand. A file already present in a chunk directory under the same
// name is replaced by the incoming file.
package partition
