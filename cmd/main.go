package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/podx/internal/services"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/urfave/cli/v3"
)

// discoverConfig loads config.toml from $PODX_CONFIG or the working
// directory, falling back to defaults when neither resolves.
func discoverConfig() (*shared.Config, string) {
	path := os.Getenv("PODX_CONFIG")
	if path == "" {
		path = "config.toml"
	}

	if _, err := os.Stat(path); err == nil {
		if config, err := shared.LoadConfig(path); err == nil {
			return config, path
		}
	}

	return shared.DefaultConfig(), path
}

func main() {
	logger := shared.NewLogger(nil)
	config, configPath := discoverConfig()

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Generator:  services.NewPodcastService(config.API.BaseURL, nil),
		API:        services.NewAPIService(config.API.BaseURL, nil),
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "podx",
		Usage:    "Turn documents and articles into podcast episodes",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
