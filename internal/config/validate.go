package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/vec3/codec"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if _, ok := codec.ByName(c.Output.Codec); !ok {
		return fmt.Errorf("output.codec must be one of %s, got %q", strings.Join(codec.Names, ", "), c.Output.Codec)
	}
	if c.Registry.MaxHandles < 0 {
		return errors.New("registry.max_handles must be >= 0")
	}
	return nil
}

// SlogLevel maps logging.level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
