package config

import "github.com/dendrascience/dirsplit/partition"

const (
	defaultChunk     = partition.DefaultChunk
	defaultOrder     = "natural"
	defaultNaming    = "decimal"
	defaultWidth     = 4
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultConfigPath = "~/.config/dirsplit/config.toml"
	projectConfigFile = "dirsplit.toml"
)

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Split: Split{
			Chunk:  defaultChunk,
			Order:  defaultOrder,
			Naming: defaultNaming,
			Width:  defaultWidth,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
