package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vec3"
	"github.com/hupe1980/vec3/codec"
	"github.com/hupe1980/vec3/internal/config"
)

type commandContext struct {
	configFlag *string
	outputFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, outputFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		outputFlag: outputFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// codec returns the --output codec, falling back to output.codec.
func (c *commandContext) codec() (codec.Codec, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	name := cfg.Output.Codec
	if c.outputFlag != nil && strings.TrimSpace(*c.outputFlag) != "" {
		name = strings.ToLower(strings.TrimSpace(*c.outputFlag))
	}
	cd, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown output codec %q (want one of %s)", name, strings.Join(codec.Names, ", "))
	}
	return cd, nil
}

// logger builds a logger writing to the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command) (*vec3.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Logging.Format == "json" {
		return vec3.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts)), nil
	}
	return vec3.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts)), nil
}

func (c *commandContext) registry(cmd *cobra.Command) (*vec3.Registry, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	return vec3.NewRegistry(
		vec3.WithLogger(logger),
		vec3.WithMaxHandles(cfg.Registry.MaxHandles),
	), nil
}
