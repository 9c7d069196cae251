// Package config loads dirsplit's TOML configuration.
//
// Files are looked up in order: the path given with --config, then
// ~/.config/dirsplit/config.toml, then dirsplit.toml in the working
// directory. A missing file is not an error; defaults apply. Command-line
// flags override whatever the file sets.
package config
