// Package remote syncs the content directory from a git repository, so site
// content can live in its own repo and be pulled before building.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// SyncOptions configures a content sync.
type SyncOptions struct {
	URL    string // remote repository URL
	Dir    string // local content directory
	Branch string // optional branch; default branch when empty
}

// Sync clones the content repository into the target directory, or pulls when
// a clone already exists there.
func Sync(ctx context.Context, opts SyncOptions) error {
	if opts.URL == "" {
		return sgerrors.New(sgerrors.CategoryValidation, sgerrors.SeverityFatal, "content repository URL is required")
	}

	if _, err := os.Stat(opts.Dir + "/.git"); err == nil {
		return pull(ctx, opts)
	}
	return clone(ctx, opts)
}

func clone(ctx context.Context, opts SyncOptions) error {
	slog.Debug("Cloning content repository", logfields.URL(opts.URL), logfields.Path(opts.Dir), slog.String("branch", opts.Branch))

	cloneOptions := &git.CloneOptions{
		URL:   opts.URL,
		Depth: 1,
	}
	if opts.Branch != "" {
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/heads/" + opts.Branch)
		cloneOptions.SingleBranch = true
	}

	repository, err := git.PlainCloneContext(ctx, opts.Dir, false, cloneOptions)
	if err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryGit, fmt.Sprintf("failed to clone content repository %s", opts.URL))
	}

	if ref, err := repository.Head(); err == nil {
		slog.Info("Content repository cloned", logfields.URL(opts.URL), logfields.Commit(ref.Hash().String()[:8]))
	} else {
		slog.Info("Content repository cloned", logfields.URL(opts.URL))
	}
	return nil
}

func pull(ctx context.Context, opts SyncOptions) error {
	slog.Debug("Updating content repository", logfields.Path(opts.Dir))

	repository, err := git.PlainOpen(opts.Dir)
	if err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryGit, "failed to open content repository")
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryGit, "failed to get worktree")
	}

	err = worktree.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		slog.Info("Content repository already up to date", logfields.Path(opts.Dir))
		return nil
	}
	if err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryGit, "failed to pull content repository")
	}

	if ref, err := repository.Head(); err == nil {
		slog.Info("Content repository updated", logfields.Path(opts.Dir), logfields.Commit(ref.Hash().String()[:8]))
	}
	return nil
}
