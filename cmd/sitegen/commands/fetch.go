package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/config"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/remote"
)

// FetchCmd implements the 'fetch' command.
type FetchCmd struct {
	Repository string `short:"r" help:"Content repository URL, overrides content.repository"`
	Branch     string `help:"Branch to fetch, overrides content.branch"`
}

func (f *FetchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)

	url := f.Repository
	if url == "" {
		url = cfg.Content.Repository
	}
	if url == "" {
		return sgerrors.New(sgerrors.CategoryValidation, sgerrors.SeverityFatal,
			"no content repository configured; set content.repository or pass --repository")
	}

	branch := f.Branch
	if branch == "" {
		branch = cfg.Content.Branch
	}

	if err := remote.Sync(context.Background(), remote.SyncOptions{
		URL:    url,
		Dir:    cfg.Content.Directory,
		Branch: branch,
	}); err != nil {
		return err
	}

	fmt.Printf("Content synced into %s\n", cfg.Content.Directory)
	return nil
}
