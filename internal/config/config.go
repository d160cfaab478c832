package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Serve   ServeConfig   `yaml:"serve"`
	Daemon  DaemonConfig  `yaml:"daemon"`
	Events  EventsConfig  `yaml:"events"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the site itself.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author,omitempty"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
}

// ContentConfig locates the markdown sources.
type ContentConfig struct {
	Directory  string `yaml:"directory"`
	StaticDir  string `yaml:"static_dir,omitempty"`
	Repository string `yaml:"repository,omitempty"` // optional git repo holding the content
	Branch     string `yaml:"branch,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

// DaemonConfig configures continuous rebuild behaviour in serve mode.
// Durations are given in Go duration syntax ("30s", "5m").
type DaemonConfig struct {
	RebuildInterval string `yaml:"rebuild_interval,omitempty"` // empty disables scheduled rebuilds
	WatchDebounce   string `yaml:"watch_debounce,omitempty"`
}

// RebuildIntervalDuration parses the rebuild interval; zero means disabled.
func (d DaemonConfig) RebuildIntervalDuration() time.Duration {
	dur, err := time.ParseDuration(d.RebuildInterval)
	if err != nil {
		return 0
	}
	return dur
}

// WatchDebounceDuration parses the watch debounce, falling back to the default.
func (d DaemonConfig) WatchDebounceDuration() time.Duration {
	dur, err := time.ParseDuration(d.WatchDebounce)
	if err != nil || dur <= 0 {
		return defaultWatchDebounce
	}
	return dur
}

// EventsConfig configures optional NATS build event publishing.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// HistoryConfig configures the local build history database.
// The zero value keeps history enabled with the default database path.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Database string `yaml:"database,omitempty"`
}

// LoggingConfig configures slog setup.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env/.env.local if present; missing files are fine.
	_ = godotenv.Load(".env", ".env.local")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse unmarshals config bytes, expands environment variables, and applies defaults.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a config with all defaults applied, for use without a file.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}
