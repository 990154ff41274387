package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/podx/internal/services"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/urfave/cli/v3"
)

// relayResponse checks a backend call's outcome and prints the response,
// pretty-printing decoded JSON unless compact output was requested. Non-2xx
// responses become errors rather than output.
func (r *Runner) relayResponse(resp *services.APIResponse, err error, compact bool) error {
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, resp.Body)
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, !compact)
	}

	r.output.Write(resp.Body)
	r.output.Write([]byte("\n"))
	return nil
}

// APIGet issues a raw GET against the backend and prints whatever comes back
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	r.logger.Info("backend GET", "path", path)

	resp, err := r.api.Get(ctx, path)
	return r.relayResponse(resp, err, cmd.Bool("json"))
}

// APIPost issues a raw POST against the backend with a JSON body
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	data := cmd.String("data")

	if data == "" {
		return fmt.Errorf("%w: --data flag is required", shared.ErrMissingArgument)
	}
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("%w: data is not valid JSON", shared.ErrInvalidInput)
	}

	r.logger.Info("backend POST", "path", path, "bytes", len(data))

	resp, err := r.api.Post(ctx, path, []byte(data))
	return r.relayResponse(resp, err, false)
}
