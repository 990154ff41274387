// Command definitions. Actions live on [Runner].
package main

import "github.com/urfave/cli/v3"

// setupCommand handles configuration scaffolding.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config.toml and the episode output directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Generation backend base URL to persist",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Episode output directory to persist",
			},
		},
		Action: r.Setup,
	}
}

// generateCommand runs a full episode generation from the command line.
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate an episode from URLs and documents",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "Article URL to include (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a source document (repeatable)",
			},
			&cli.StringFlag{
				Name:     "analogies",
				Aliases:  []string{"a"},
				Usage:    "How the hosts should explain things",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "emphasis",
				Usage: "Points the hosts must not skip",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "Conversation style: casual, professional, educational, or entertaining",
				Value: "casual",
			},
			&cli.StringFlag{
				Name:  "plan",
				Usage: "Generation plan: stingy or sigma",
				Value: "stingy",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory for the downloaded episode",
			},
			&cli.BoolFlag{
				Name:  "export",
				Usage: "Write episode notes and metadata alongside the audio",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: markdown, text, or json",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the final job as raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Generate,
	}
}

// statusCommand checks a generation job.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Check the state of a generation job",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "job",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Poll until the job reaches a terminal state",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the finished episode in the browser",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the job as raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Status,
	}
}

// playCommand plays a downloaded episode in the terminal.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play an episode audio file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Playback rate: 0.5, 1, 1.5, or 2",
				Value: 1.0,
			},
		},
		Action: r.Play,
	}
}

// studioCommand returns the top-level TUI command for interactive episode creation.
func studioCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "studio",
		Aliases: []string{"wizard", "ui"},
		Usage:   "Launch the interactive episode creation wizard",
		Action:  r.Studio,
	}
}

// serveCommand runs the local proxy in front of the generation backend.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local proxy for the generation backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (defaults to server.host from config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (defaults to server.port from config)",
			},
			&cli.StringFlag{
				Name:  "upstream",
				Usage: "Backend URL to proxy (defaults to server.upstream_url from config)",
			},
		},
		Action: r.Serve,
	}
}

// apiCommand handles direct backend calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the generation backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print compact JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON payload for the request body",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}
