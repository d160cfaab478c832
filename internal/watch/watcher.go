// Package watch monitors the content directory and triggers debounced rebuilds.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory tree and invokes a callback after changes,
// debounced so rapid editor save bursts trigger a single rebuild.
type Watcher struct {
	dir          string
	watcher      *fsnotify.Watcher
	onChange     func()
	debounceTime time.Duration
}

// New creates a watcher for the given directory. onChange runs on the watcher
// goroutine after the debounce window closes.
func New(dir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve watch directory: %w", err)
	}

	return &Watcher{
		dir:          absDir,
		watcher:      fsw,
		onChange:     onChange,
		debounceTime: debounce,
	}, nil
}

// Start begins monitoring. It blocks until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", w.dir, err)
	}
	defer func() {
		_ = w.watcher.Close()
	}()

	slog.Info("Watching for content changes", "dir", w.dir, "debounce", w.debounceTime)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("Content change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounceTime)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounceTime)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.onChange()
		}
	}
}

// relevant filters watcher noise: only writes, creates, removes, and renames
// of markdown or asset files matter for rebuilds.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	// Editor temp/backup files.
	if len(base) > 0 && (base[0] == '.' || base[len(base)-1] == '~') {
		return false
	}
	return true
}
