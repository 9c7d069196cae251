package cmd

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dendrascience/dirsplit/internal/config"
	"github.com/dendrascience/dirsplit/internal/logging"
)

// commandContext carries the global flags and the lazily loaded config
// shared by every subcommand.
type commandContext struct {
	configFlag string
	logLevel   string
	logFormat  string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// logger builds a logger from the config, with --log-level and --log-format
// taking precedence.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: w,
	}
	if c.logLevel != "" {
		opts.Level = c.logLevel
	}
	if c.logFormat != "" {
		opts.Format = c.logFormat
	}
	return logging.New(opts)
}
