package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/events"
	"git.home.luguber.info/inful/sitegen/internal/history"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitegen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the site from markdown content"`
	Init    InitCmd    `cmd:"" help:"Initialize a new site configuration and content skeleton"`
	Serve   ServeCmd   `cmd:"" help:"Build and serve the site with live rebuild on content change"`
	Check   CheckCmd   `cmd:"" help:"Verify internal links in the generated site"`
	History HistoryCmd `cmd:"" help:"List recent builds"`
	Fetch   FetchCmd   `cmd:"" help:"Clone or update the content repository"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigureLogging re-applies logging setup from the loaded config unless the
// verbose flag already forced debug level.
func ConfigureLogging(cfg *config.Config, verbose bool) {
	if verbose {
		return
	}

	var level slog.Level
	switch config.NormalizeLogLevel(cfg.Logging.Level) {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ResolveOutputDir determines the final output directory.
// Priority: CLI flag > configured directory > built-in default.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	if cfg.Output.Directory != "" {
		return cfg.Output.Directory
	}
	return "./site"
}

// RecordBuild writes a build result to the history store when enabled.
func RecordBuild(ctx context.Context, cfg *config.Config, result *site.Result, buildErr error) {
	if cfg.History.Disabled {
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfg.History.Database), 0o755); err != nil {
		slog.Warn("Failed to create history directory", "error", err)
		return
	}
	store, err := history.NewStore(cfg.History.Database)
	if err != nil {
		slog.Warn("Failed to open build history", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if buildErr != nil {
		buildID := "unknown"
		if result != nil {
			buildID = result.BuildID
		}
		payload := history.Payload{Outcome: "failed", Error: buildErr.Error()}
		if err := store.Append(ctx, buildID, history.EventBuildFailed, payload); err != nil {
			slog.Warn("Failed to record failed build", "error", err)
		}
		return
	}

	payload := history.Payload{
		Outcome:      outcomeOf(result),
		Rendered:     result.Rendered,
		Skipped:      result.Skipped,
		Placeholders: result.Placeholders,
		DurationMS:   result.Duration.Milliseconds(),
		OutputDir:    result.OutputDir,
	}
	if err := store.Append(ctx, result.BuildID, history.EventBuildCompleted, payload); err != nil {
		slog.Warn("Failed to record build", "error", err)
	}
}

// PublishBuildEvent publishes a completed build to NATS when enabled.
// Failures degrade to warnings.
func PublishBuildEvent(cfg *config.Config, result *site.Result) {
	if !cfg.Events.Enabled || result == nil {
		return
	}
	pub, err := events.NewPublisher(&cfg.Events)
	if err != nil {
		slog.Warn("Build event publishing unavailable", "error", err)
		return
	}
	defer pub.Close()

	event := events.BuildEvent{
		BuildID:      result.BuildID,
		Outcome:      outcomeOf(result),
		Rendered:     result.Rendered,
		Skipped:      result.Skipped,
		Placeholders: result.Placeholders,
		DurationMS:   result.Duration.Milliseconds(),
	}
	if err := pub.Publish(event); err != nil {
		slog.Warn("Failed to publish build event", "error", err)
	}
}

func outcomeOf(result *site.Result) string {
	if result.Placeholders > 0 {
		return string(metrics.OutcomeWarning)
	}
	return string(metrics.OutcomeSuccess)
}

