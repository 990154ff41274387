package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config is the whole application configuration, persisted as TOML.
type Config struct {
	API        APIConfig        `toml:"api"`
	Server     ServerConfig     `toml:"server"`
	Generation GenerationConfig `toml:"generation"`
	Output     OutputConfig     `toml:"output"`
}

// APIConfig contains settings for the podcast backend client.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the configured request timeout as a [time.Duration].
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ServerConfig contains settings for the local proxy server.
type ServerConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	UpstreamURL string `toml:"upstream_url"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GenerationConfig contains the status polling policy.
type GenerationConfig struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	PollTimeoutSeconds  int `toml:"poll_timeout_seconds"`
	MaxPollFailures     int `toml:"max_poll_failures"`
}

// PollInterval returns the delay between status polls.
func (g GenerationConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalSeconds) * time.Second
}

// PollTimeout returns the overall ceiling for waiting on a job.
func (g GenerationConfig) PollTimeout() time.Duration {
	return time.Duration(g.PollTimeoutSeconds) * time.Second
}

// OutputConfig contains episode export settings.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// LoadConfig parses the TOML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config parsed from the embedded example file, so
// defaults live in exactly one place.
func DefaultConfig() *Config {
	var config Config
	if _, err := toml.Decode(string(exampleConf), &config); err != nil {
		panic(fmt.Sprintf("embedded default config is malformed: %v", err))
	}

	return &config
}

// CreateConfigFile writes the embedded example config to path, refusing to
// clobber an existing file.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveConfig writes config to path as TOML, replacing any existing file.
func SaveConfig(path string, config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return nil
}
