package config

import (
	"fmt"

	"github.com/dendrascience/dirsplit/internal/logging"
	"github.com/dendrascience/dirsplit/partition"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSplit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSplit() error {
	if c.Split.Chunk <= 0 {
		return fmt.Errorf("split.chunk must be positive, got %d", c.Split.Chunk)
	}
	if _, err := partition.OrderNamed(c.Split.Order); err != nil {
		return fmt.Errorf("split.order: %w", err)
	}
	if _, err := partition.NamerNamed(c.Split.Naming, c.Split.Width); err != nil {
		return fmt.Errorf("split.naming: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "", "console", "json":
		return nil
	}
	return fmt.Errorf("logging.format must be one of %v, got %q", logging.Formats, c.Logging.Format)
}
