// Package cmd provides the command-line interface implementation for dirsplit.
//
// It uses the Cobra library for command structure and Fang for styled help
// and error output. The root command performs the split; the remaining
// commands are utilities around it:
//   - root: splits PATH into numbered directories of at most --chunk files
//   - mount: serves a read-only flat view of a split directory over FUSE
//   - count: tabulates the regular files held by a directory and its children
//   - seed: generates a flat directory of numbered test files
//   - config: writes and validates the TOML configuration file
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Settings resolve in order: flags
// the user set, then the configuration file, then built-in defaults.
package cmd
