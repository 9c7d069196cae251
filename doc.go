// Package main provides the dirsplit command-line interface.
//
// dirsplit splits a directory holding too many files into numbered
// subdirectories of at most a fixed number of files each, keeping every
// directory small enough for filesystems such as ext3 and for tools that
// struggle with huge listings.
//
// The main binary supports multiple subcommands:
//   - (root): Split PATH into chunk directories
//   - mount: Mount a read-only flat view of a split directory
//   - count: Count files in a directory and its subdirectories
//   - seed: Generate a flat directory of test files
//   - config: Create and validate the configuration file
//
// The splitting itself lives in package partition and can be used as a
// library.
package main
