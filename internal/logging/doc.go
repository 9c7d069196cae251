// Package logging builds the slog loggers used by the dirsplit CLI.
//
// Two formats are supported: "console", a compact key=value line for people
// watching a terminal, and "json", one object per line with the short keys
// ts, level and msg. Logs go to stderr so that tables printed on stdout can
// be piped.
package logging
