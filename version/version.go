package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

var (
	// Set with -ldflags at release time.
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Module  string `json:"module"`
}

// GetVersion returns the version string, preferring the linked-in value and
// falling back to the module version recorded by the go tool.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the VCS revision the binary was built from.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	return buildSetting("vcs.revision")
}

// GetBuildDate returns the build or commit time.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	return buildSetting("vcs.time")
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value
		}
	}
	return "unknown"
}

// GetInfo returns complete version information
func GetInfo() Info {
	module := "github.com/dendrascience/dirsplit"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		module = info.Main.Path
	}
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Module:  module,
	}
}

// GetFullVersion returns the version with a short commit and the build date
// when they are known, e.g. "v1.2.0 (3f2a9c1, built 2025-01-01T00:00:00Z)".
func GetFullVersion() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, short)
}

// Fprint writes a multi-line version report for appName to w.
func Fprint(w io.Writer, appName string) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", appName, info)
	fmt.Fprintf(w, "Module: %s\n", info.Module)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
}
