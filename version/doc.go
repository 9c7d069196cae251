// Package version reports the dirsplit build.
//
// Release builds set Version, Commit and Date with:
//
//	-ldflags "-X github.com/dendrascience/dirsplit/version.Version=v1.0.0 -X github.com/dendrascience/dirsplit/version.Commit=abc123 -X github.com/dendrascience/dirsplit/version.Date=2025-01-01T00:00:00Z"
//
// Development builds fall back to the module version and VCS stamps that
// the go tool embeds, read through debug.ReadBuildInfo.
package version
