package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("site:\n  title: Jane Doe\n"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cfg.Site.Title)
	assert.Equal(t, "content", cfg.Content.Directory)
	assert.Equal(t, "./site", cfg.Output.Directory)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.Equal(t, 2*time.Second, cfg.Daemon.WatchDebounceDuration())
	assert.Equal(t, "sitegen.builds", cfg.Events.Subject)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseExpandsEnvironment(t *testing.T) {
	t.Setenv("SITE_TITLE", "Prof. Example")

	cfg, err := Parse([]byte("site:\n  title: ${SITE_TITLE}\n"))
	require.NoError(t, err)
	assert.Equal(t, "Prof. Example", cfg.Site.Title)
}

func TestParseRejectsInvalidBaseURL(t *testing.T) {
	_, err := Parse([]byte("site:\n  title: t\n  base_url: \"http://\"\n"))
	assert.Error(t, err)
}

func TestParseEventsDefaultsNATSURL(t *testing.T) {
	// Enabled events default the NATS URL rather than failing validation.
	cfg, err := Parse([]byte("site:\n  title: t\nevents:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Events.NATSURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitegen.yaml")
	data := "site:\n  title: Jane Doe\noutput:\n  directory: out\n  clean: true\nserve:\n  addr: \":9999\"\n  metrics: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.True(t, cfg.Output.Clean)
	assert.Equal(t, ":9999", cfg.Serve.Addr)
	assert.True(t, cfg.Serve.Metrics)
}

func TestDaemonDurations(t *testing.T) {
	cfg, err := Parse([]byte("site:\n  title: t\ndaemon:\n  rebuild_interval: 5m\n  watch_debounce: 500ms\n"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Daemon.RebuildIntervalDuration())
	assert.Equal(t, 500*time.Millisecond, cfg.Daemon.WatchDebounceDuration())

	_, err = Parse([]byte("site:\n  title: t\ndaemon:\n  rebuild_interval: soon\n"))
	assert.Error(t, err)
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel(" DEBUG "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("bogus"))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("json"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
}
