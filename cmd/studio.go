package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/desertthunder/podx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Studio launches the interactive episode creation wizard.
func (r *Runner) Studio(ctx context.Context, cmd *cli.Command) error {
	if r.generator == nil {
		return fmt.Errorf("%w: podcast backend not initialized", shared.ErrServiceUnavailable)
	}
	if r.engine == nil {
		return fmt.Errorf("%w: episode engine not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/podx-studio.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.engine, r.config.API.BaseURL, r.config.Output.Dir)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
