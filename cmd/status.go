package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/desertthunder/podx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Status checks the state of a generation job, optionally watching it to a
// terminal state and opening the finished episode in the browser.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	jobID := cmd.StringArg("job")
	watch := cmd.Bool("watch")
	open := cmd.Bool("open")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if jobID == "" {
		return fmt.Errorf("%w: job id is required", shared.ErrMissingArgument)
	}
	if r.generator == nil {
		return fmt.Errorf("%w: podcast backend not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("checking job status", "job", jobID, "watch", watch)

	var job *models.Job

	if watch {
		r.writePlain("Watching job %s...\n\n", jobID)

		progressCh := make(chan tasks.ProgressUpdate, 50)
		go func() {
			for update := range progressCh {
				r.writePlain("   %s\n", update.Message)
			}
		}()

		// Await errors arrive sentinel-wrapped already
		var err error
		job, err = r.engine.Await(ctx, progressCh, jobID)
		close(progressCh)
		if err != nil {
			return err
		}
	} else {
		var err error
		job, err = r.generator.Status(ctx, jobID)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	if useJSON {
		return r.writeJSON(job, pretty)
	}

	r.writePlain("Job: %s\n", job.ID)
	r.writePlain("Status: %s\n", job.Status)
	if job.Error != "" {
		r.writePlain("Error: %s\n", job.Error)
	}
	if job.AudioURL != "" {
		r.writePlain("Audio: %s\n", r.resolveAudioURL(job.AudioURL))
	}

	if open {
		if job.Status != models.JobReady || job.AudioURL == "" {
			r.writePlain("\nEpisode is not ready to open yet.\n")
			return nil
		}

		url := r.resolveAudioURL(job.AudioURL)
		r.writePlain("\n→ Opening %s\n", url)
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
			r.writePlain("Please open this URL in your browser:\n%s\n", url)
		}
	}

	return nil
}

// resolveAudioURL makes a backend audio URL absolute using the configured
// base URL.
func (r *Runner) resolveAudioURL(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(r.config.API.BaseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
