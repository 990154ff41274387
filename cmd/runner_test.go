package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/podx/internal/services"
	"github.com/desertthunder/podx/internal/shared"
	tu "github.com/desertthunder/podx/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("keeps every provided dependency", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			client := &http.Client{}
			generator := &tu.MockGenerator{}
			api := &services.APIService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/etc/podx/config.toml",
				Generator:  generator,
				API:        api,
				HTTPClient: client,
				Logger:     logger,
				Output:     output,
			})

			same := runner.config == config &&
				runner.configPath == "/etc/podx/config.toml" &&
				runner.generator == generator &&
				runner.api == api &&
				runner.httpClient == client &&
				runner.logger == logger &&
				runner.output == output
			if !same {
				t.Error("expected provided dependencies to be kept as-is")
			}
			if runner.engine == nil {
				t.Error("expected engine to be constructed")
			}
		})

		t.Run("fills defaults for zero opts", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config")
			}
			if runner.logger == nil {
				t.Error("expected default logger")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient")
			}
			if runner.configPath != "" {
				t.Errorf("expected no config path, got %s", runner.configPath)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("rendering", func(t *testing.T) {
			cases := []struct {
				name   string
				pretty bool
				verify func(t *testing.T, out string)
			}{
				{"pretty output is indented", true, func(t *testing.T, out string) {
					if !strings.Contains(out, "\"style\": \"casual\"") {
						t.Errorf("expected indented JSON, got %s", out)
					}
					if !strings.HasSuffix(out, "\n") {
						t.Error("expected trailing newline")
					}
				}},
				{"compact output is one line", false, func(t *testing.T, out string) {
					if out != "{\"style\":\"casual\"}\n" {
						t.Errorf("expected compact JSON with newline, got %q", out)
					}
				}},
			}

			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					out := &bytes.Buffer{}
					runner := NewRunner(RunnerOpts{Output: out})

					if err := runner.writeJSON(map[string]string{"style": "casual"}, tc.pretty); err != nil {
						t.Fatalf("expected no error, got %v", err)
					}

					tc.verify(t, out.String())
				})
			}
		})

		t.Run("reports unmarshalable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("reports body write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"style": "casual"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("reports newline write failure", func(t *testing.T) {
			limited := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limited})

			err := runner.writeJSON(map[string]string{"style": "casual"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("formats into the output writer", func(t *testing.T) {
			out := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: out})

			if err := runner.writePlain("episode %s ready", "ep-1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if out.String() != "episode ep-1 ready" {
				t.Errorf("expected formatted text, got %q", out.String())
			}
		})

		t.Run("passes literal text through", func(t *testing.T) {
			out := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: out})

			runner.writePlain("done")
			if out.String() != "done" {
				t.Errorf("expected literal text, got %q", out.String())
			}
		})

		t.Run("reports write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("done")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln pads with blank lines", func(t *testing.T) {
		out := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: out})

		runner.writePlainln("saved to %s", "./episodes")
		if out.String() != "\nsaved to ./episodes\n" {
			t.Errorf("expected padded line, got %q", out.String())
		}
	})

	t.Run("register wires the full command set", func(t *testing.T) {
		commands := NewRunner(RunnerOpts{}).register()

		want := []string{"setup", "generate", "status", "play", "studio", "serve", "api"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}

		for i, name := range want {
			if commands[i] == nil || commands[i].Name != name {
				t.Errorf("command %d: expected %q", i, name)
			}
		}
	})

	t.Run("updateConfig", func(t *testing.T) {
		t.Run("persists mutation when a path is known", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			config := shared.DefaultConfig()
			if err := shared.SaveConfig(configPath, config); err != nil {
				t.Fatalf("failed to seed config: %v", err)
			}

			runner := NewRunner(RunnerOpts{Config: config, ConfigPath: configPath})

			err := runner.updateConfig(func(c *shared.Config) error {
				c.API.BaseURL = "http://10.0.0.5:8000"
				return nil
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			reloaded, err := shared.LoadConfig(configPath)
			if err != nil {
				t.Fatalf("failed to reload config: %v", err)
			}
			if reloaded.API.BaseURL != "http://10.0.0.5:8000" {
				t.Errorf("expected persisted base url, got %s", reloaded.API.BaseURL)
			}
		})

		t.Run("keeps mutation in memory without a path", func(t *testing.T) {
			config := shared.DefaultConfig()
			runner := NewRunner(RunnerOpts{Config: config})

			err := runner.updateConfig(func(c *shared.Config) error {
				c.Output.Dir = "./elsewhere"
				return nil
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Output.Dir != "./elsewhere" {
				t.Error("expected in-memory update")
			}
		})

		t.Run("rejects nil config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{ConfigPath: "/tmp/podx.toml"})
			runner.config = nil

			err := runner.updateConfig(func(c *shared.Config) error { return nil })
			if err == nil || !strings.Contains(err.Error(), "config is nil") {
				t.Errorf("expected nil config error, got %v", err)
			}
		})

		t.Run("surfaces save failure", func(t *testing.T) {
			// parent directory does not exist, so SaveConfig cannot write
			unwritable := filepath.Join(t.TempDir(), "missing", "config.toml")
			runner := NewRunner(RunnerOpts{Config: shared.DefaultConfig(), ConfigPath: unwritable})

			err := runner.updateConfig(func(c *shared.Config) error { return nil })
			if err == nil || !strings.Contains(err.Error(), "failed to save config") {
				t.Errorf("expected save error, got %v", err)
			}
		})

		t.Run("propagates mutation error with cause", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: shared.DefaultConfig()})

			err := runner.updateConfig(func(c *shared.Config) error {
				return fmt.Errorf("bad value")
			})
			if err == nil {
				t.Fatal("expected mutation error to propagate")
			}
			if !strings.Contains(err.Error(), "failed to update configuration") ||
				!strings.Contains(err.Error(), "bad value") {
				t.Errorf("expected wrapped cause, got %v", err)
			}
		})
	})
}
