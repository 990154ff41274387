package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/podx/internal/services"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/desertthunder/podx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner carries the shared dependencies behind every CLI command. Each
// command's action is a method on it.
type Runner struct {
	config     *shared.Config
	configPath string
	generator  services.Generator
	api        *services.APIService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     tasks.Engine
}

// RunnerOpts feeds [NewRunner]; zero-valued fields get sensible defaults.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Generator  services.Generator
	API        *services.APIService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a Runner, filling in defaults for anything unset and
// wiring an episode engine from the config's generation settings.
func NewRunner(opts RunnerOpts) *Runner {
	r := &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		generator:  opts.Generator,
		api:        opts.API,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if r.config == nil {
		r.config = shared.DefaultConfig()
	}
	if r.logger == nil {
		r.logger = shared.NewLogger(nil)
	}
	if r.output == nil {
		r.output = os.Stdout
	}
	if r.httpClient == nil {
		r.httpClient = http.DefaultClient
	}

	r.engine = tasks.NewEpisodeEngine(r.generator, r.config.API.BaseURL, tasks.PollPolicy{
		Interval:    r.config.Generation.PollInterval(),
		Timeout:     r.config.Generation.PollTimeout(),
		MaxFailures: r.config.Generation.MaxPollFailures,
	})

	return r
}

// SetLogger swaps the runner's logger, e.g. to redirect logs to a file while
// the TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, generateCommand, statusCommand, playCommand, studioCommand, serveCommand, apiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// updateConfig applies a mutation to the loaded config and persists it when a
// config path is known. With no path the change stays in memory.
func (r *Runner) updateConfig(mutate func(*shared.Config) error) error {
	if r.config == nil {
		return fmt.Errorf("config is nil")
	}

	if err := mutate(r.config); err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}

	if r.configPath == "" {
		return nil
	}

	if err := shared.SaveConfig(r.configPath, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// writeJSON renders data as JSON, indented unless pretty is false, followed
// by a newline.
func (r *Runner) writeJSON(data any, pretty bool) error {
	marshal := json.Marshal
	if pretty {
		marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	payload, err := marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(payload); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writePlainln surrounds one formatted line with blank-line padding.
func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain("\n"+format+"\n", args...)
}

// writePlainHeader frames a section title in heavy rules.
func (r *Runner) writePlainHeader(title string) {
	rule := strings.Repeat("═", 39)
	r.writePlain("%s\n%v\n%s\n", rule, title, rule)
}
