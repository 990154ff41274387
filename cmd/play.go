package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/podx/internal/player"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Play plays an episode audio file in the terminal, printing a transport
// line as playback progresses.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	rate := cmd.Float("rate")

	if path == "" {
		return fmt.Errorf("%w: path to an episode file is required", shared.ErrMissingArgument)
	}

	media, err := player.OpenMP3(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPlayback, err)
	}

	pl := player.New(media)
	defer pl.Close()

	if rate != 1.0 {
		if err := pl.SetRate(rate); err != nil {
			return err
		}
	}

	if err := pl.PlayPause(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPlayback, err)
	}

	r.logger.Info("playing episode", "path", path, "rate", pl.Rate())
	r.writePlain("Playing %s at %gx\n", path, pl.Rate())
	r.writePlain("Press ctrl+c to stop.\n\n")

	for {
		select {
		case <-ctx.Done():
			r.writePlain("\n")
			return ctx.Err()
		case ev, ok := <-media.Events():
			if !ok {
				return nil
			}

			pl.HandleEvent(ev)

			switch ev.Kind {
			case player.EventTimeUpdate:
				r.writePlain("\r%s / %s", player.FormatTime(pl.CurrentTime()), player.FormatTime(pl.Duration()))
			case player.EventEnded:
				r.writePlain("\r%s / %s\n\n✓ Done\n", player.FormatTime(pl.Duration()), player.FormatTime(pl.Duration()))
				return nil
			case player.EventError:
				r.writePlain("\n")
				return fmt.Errorf("%w: %v", shared.ErrPlayback, ev.Err)
			}
		}
	}
}
