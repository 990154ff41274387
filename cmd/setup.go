package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/podx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ensureConfig loads the config at path, scaffolding it from the embedded
// template first when missing. Falls back to defaults if anything goes
// wrong, so setup always has a config to work with.
func (r *Runner) ensureConfig(path string) *shared.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.logger.Info("config file not found, creating from template", "path", path)
		if err := shared.CreateConfigFile(path); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			return shared.DefaultConfig()
		}
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, using defaults", "error", err)
		return shared.DefaultConfig()
	}

	r.logger.Info("config loaded", "path", path)
	return config
}

// Setup scaffolds the configuration file and episode output directory.
//
// Flags that carry values (--base-url, --output) are persisted into the
// config file so later runs pick them up.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	r.config = r.ensureConfig(configPath)
	r.configPath = configPath

	save := func(apply func(*shared.Config)) error {
		return r.updateConfig(func(c *shared.Config) error {
			apply(c)
			return nil
		})
	}

	if base := cmd.String("base-url"); base != "" {
		if err := save(func(c *shared.Config) { c.API.BaseURL = base }); err != nil {
			return err
		}
		r.logger.Info("backend base url saved", "base_url", base)
	}

	if dir := cmd.String("output"); dir != "" {
		if err := save(func(c *shared.Config) { c.Output.Dir = dir }); err != nil {
			return err
		}
		r.logger.Info("output directory saved", "dir", dir)
	}

	if err := os.MkdirAll(r.config.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	r.writePlain("✓ Configuration ready at %s\n", configPath)
	r.writePlain("✓ Episodes will be saved to %s\n", r.config.Output.Dir)
	r.writePlainln("Next steps:")
	r.writePlain("1. Point podx at your backend: podx setup --base-url http://localhost:8000\n")
	r.writePlain("2. Run 'podx studio' to create your first episode\n")

	return nil
}
