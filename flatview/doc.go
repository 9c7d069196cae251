// Package flatview implements a read-only FUSE filesystem that presents a
// split directory as if it had never been split.
//
// A directory that dirsplit has partitioned holds numbered subdirectories
// of files. Mounting a flat view of it shows every regular file found in
// those immediate subdirectories, plus any files still at the top level, in
// a single directory. Nothing is copied: reads go straight to the file in
// its chunk directory.
//
// Name collisions are resolved in favor of the first file seen. Top-level
// files are seen first, then chunk directories in natural order.
//
// The view is rebuilt every time the mount's directory is listed, so files
// added or split while mounted appear on the next listing.
//
// The main entry point is NewFS(), whose result is served with
// bazil.org/fuse/fs.Serve.
package flatview
