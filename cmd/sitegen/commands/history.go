package commands

import (
	"context"
	"fmt"
	"os"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" help:"Number of builds to list" default:"10"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)

	if cfg.History.Disabled {
		fmt.Println("Build history is disabled in configuration")
		return nil
	}
	if _, err := os.Stat(cfg.History.Database); os.IsNotExist(err) {
		fmt.Println("No builds recorded yet")
		return nil
	}

	store, err := history.NewStore(cfg.History.Database)
	if err != nil {
		return fmt.Errorf("open build history: %w", err)
	}
	defer func() { _ = store.Close() }()

	builds, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return fmt.Errorf("read build history: %w", err)
	}
	if len(builds) == 0 {
		fmt.Println("No builds recorded yet")
		return nil
	}

	for _, b := range builds {
		switch b.EventType {
		case history.EventBuildFailed:
			fmt.Printf("%s  %s  failed: %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.BuildID, b.Payload.Error)
		default:
			fmt.Printf("%s  %s  %s: %d rendered, %d skipped (%dms)\n",
				b.Timestamp.Format("2006-01-02 15:04:05"), b.BuildID, b.Payload.Outcome,
				b.Payload.Rendered, b.Payload.Skipped, b.Payload.DurationMS)
		}
	}
	return nil
}
