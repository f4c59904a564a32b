package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeLogging()
	c.Output.Codec = strings.ToLower(strings.TrimSpace(c.Output.Codec))
	if c.Output.Codec == "" {
		c.Output.Codec = defaultCodec
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("VEC3_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = defaultLogFormat
	}
}
