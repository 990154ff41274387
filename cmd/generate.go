package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/podx/internal/formatter"
	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/desertthunder/podx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Generate runs a full generation from the command line: validate, submit,
// poll, download, and optionally export.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	urls := cmd.StringSlice("url")
	files := cmd.StringSlice("file")
	analogies := cmd.String("analogies")
	emphasis := cmd.String("emphasis")
	styleName := cmd.String("style")
	planName := cmd.String("plan")
	outputDir := cmd.String("output")
	doExport := cmd.Bool("export")
	format := cmd.String("format")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if r.generator == nil {
		return fmt.Errorf("%w: podcast backend not initialized", shared.ErrServiceUnavailable)
	}

	style := models.Style(styleName)
	if !style.Valid() {
		return fmt.Errorf("%w: style %q (valid: %v)", shared.ErrInvalidFlag, styleName, models.Styles())
	}
	plan := models.Plan(planName)
	if !plan.Valid() {
		return fmt.Errorf("%w: plan %q (valid: %v)", shared.ErrInvalidFlag, planName, models.Plans())
	}

	req := models.GenerationRequest{
		URLs:      urls,
		Analogies: analogies,
		Emphasis:  emphasis,
		Style:     style,
		Plan:      plan,
	}

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
		req.Sources = append(req.Sources, models.SourceFile{
			Name: filepath.Base(path),
			Path: path,
			Size: info.Size(),
		})
	}

	if outputDir == "" {
		outputDir = r.config.Output.Dir
	}
	if format == "" {
		format = r.config.Output.Format
	}

	r.logger.Info("starting generation", "urls", len(urls), "files", len(req.Sources), "style", style, "plan", plan)
	r.writePlain("Starting episode generation...\n\n")

	// Progress channel with a goroutine printing updates as they stream in
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.ValidateSources:
				r.writePlain("📋 %s\n", update.Message)
			case tasks.SubmitRequest:
				r.writePlain("📤 %s\n", update.Message)
			case tasks.PollStatus:
				r.writePlain("   %s\n", update.Message)
			case tasks.DownloadAudio:
				r.writePlain("🎧 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Generate(ctx, progressCh, req)
	if err != nil {
		close(progressCh)
		return err
	}

	audioPath, downloadErr := r.engine.Download(ctx, progressCh, result.Job, outputDir)
	close(progressCh)
	if downloadErr != nil {
		r.logger.Warn("audio download failed", "error", downloadErr)
		r.writePlain("\n⚠ Audio download failed: %v\n", downloadErr)
		r.writePlain("  Stream it instead: %s\n", r.resolveAudioURL(result.Job.AudioURL))
	}

	r.writePlain("\n")
	r.writePlainHeader("Episode Ready")
	r.writePlain("Job: %s\n", result.Job.ID)
	r.writePlain("Polls: %d\n", result.Polls)
	r.writePlain("Took: %s\n", result.Duration.Round(time.Second))
	if audioPath != "" {
		r.writePlain("Audio: %s\n", audioPath)
	}

	if doExport {
		ep := &models.Episode{
			JobID:       result.Job.ID,
			AudioURL:    result.Job.AudioURL,
			AudioPath:   audioPath,
			Style:       style,
			Plan:        plan,
			GeneratedAt: time.Now(),
		}

		switch format {
		case "markdown", "md", "":
			export, err := formatter.WriteEpisodeExport(ep, filepath.Join(outputDir, result.Job.ID))
			if err != nil {
				return fmt.Errorf("failed to export episode: %w", err)
			}
			r.writePlain("\n✓ Episode exported to %s (%d files)\n", export.Directory, len(export.Files))
		case "text", "txt":
			path, err := formatter.WriteTextExport(ep, filepath.Join(outputDir, fmt.Sprintf("%s_notes.txt", result.Job.ID)))
			if err != nil {
				return fmt.Errorf("failed to export notes: %w", err)
			}
			r.writePlain("\n✓ Notes written to %s\n", path)
		case "json":
			path, err := formatter.WriteJSONExport(ep, filepath.Join(outputDir, fmt.Sprintf("%s.json", result.Job.ID)))
			if err != nil {
				return fmt.Errorf("failed to export metadata: %w", err)
			}
			r.writePlain("\n✓ Metadata written to %s\n", path)
		default:
			return fmt.Errorf("%w: unknown format %q (valid: markdown, text, json)", shared.ErrInvalidFlag, format)
		}
	}

	if useJSON {
		return r.writeJSON(result.Job, pretty)
	}

	return nil
}
