package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		checks := []struct {
			name string
			got  any
			want any
		}{
			{"api base url", config.API.BaseURL, "http://localhost:8000"},
			{"server port", config.Server.Port, 3000},
			{"poll interval seconds", config.Generation.PollIntervalSeconds, 3},
			{"max poll failures", config.Generation.MaxPollFailures, 5},
			{"output dir", config.Output.Dir, "./episodes"},
		}

		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
			}
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		created, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}
		if created.API.BaseURL != DefaultConfig().API.BaseURL {
			t.Error("created config should match embedded defaults")
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected refusal to clobber an existing file")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("parses every section", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			fixture := `[api]
base_url = "http://backend.internal:9000"
timeout_seconds = 15

[server]
host = "0.0.0.0"
port = 8080
upstream_url = "http://backend.internal:9000"

[generation]
poll_interval_seconds = 1
poll_timeout_seconds = 120
max_poll_failures = 3

[output]
dir = "/tmp/episodes"
format = "json"
`
			if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if config.API.BaseURL != "http://backend.internal:9000" || config.API.TimeoutSeconds != 15 {
				t.Errorf("api section mismatch: %+v", config.API)
			}
			if config.Server.Host != "0.0.0.0" || config.Server.Port != 8080 {
				t.Errorf("server section mismatch: %+v", config.Server)
			}
			if config.Generation.PollTimeoutSeconds != 120 || config.Generation.MaxPollFailures != 3 {
				t.Errorf("generation section mismatch: %+v", config.Generation)
			}
			if config.Output.Dir != "/tmp/episodes" || config.Output.Format != "json" {
				t.Errorf("output section mismatch: %+v", config.Output)
			}
		})

		t.Run("missing file errors", func(t *testing.T) {
			if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
				t.Error("expected error for missing config file")
			}
		})

		t.Run("malformed toml errors", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte("[api\nbase_url ="), 0644)

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for malformed config")
			}
		})
	})

	t.Run("SaveConfig", func(t *testing.T) {
		t.Run("round trips edits", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			config := DefaultConfig()
			config.API.BaseURL = "http://saved.example:1234"
			config.Generation.MaxPollFailures = 9

			if err := SaveConfig(path, config); err != nil {
				t.Fatalf("failed to save config: %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("failed to reload saved config: %v", err)
			}
			if loaded.API.BaseURL != "http://saved.example:1234" || loaded.Generation.MaxPollFailures != 9 {
				t.Errorf("edits did not survive the round trip: %+v", loaded)
			}
		})

		t.Run("nil config errors", func(t *testing.T) {
			if err := SaveConfig(filepath.Join(t.TempDir(), "unused.toml"), nil); err == nil {
				t.Error("expected error for nil config")
			}
		})
	})

	t.Run("duration helpers", func(t *testing.T) {
		config := DefaultConfig()

		durations := map[string]struct {
			got  time.Duration
			want time.Duration
		}{
			"api timeout":   {config.API.Timeout(), 30 * time.Second},
			"poll interval": {config.Generation.PollInterval(), 3 * time.Second},
			"poll timeout":  {config.Generation.PollTimeout(), 10 * time.Minute},
		}

		for name, d := range durations {
			if d.got != d.want {
				t.Errorf("%s = %v, want %v", name, d.got, d.want)
			}
		}
	})

	t.Run("Addr joins host and port", func(t *testing.T) {
		config := DefaultConfig()
		if config.Server.Addr() != "127.0.0.1:3000" {
			t.Errorf("expected 127.0.0.1:3000, got %s", config.Server.Addr())
		}
	})
}
