package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// Run calls fn after each change to path until ctx is done. Events closer
// together than debounce result in one call. Errors from fn are logged and
// do not stop the watch.
func Run(ctx context.Context, logger *slog.Logger, path string, debounce time.Duration, fn func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logger.Info("watching schema", "path", target)

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(ev, target) {
				continue
			}

			logger.Debug("schema changed", "op", ev.Op.String())
			fire = time.After(debounce)

		case <-fire:
			fire = nil

			if err := fn(ctx); err != nil {
				logger.Error("normalization failed", "path", target, "error", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", "error", err)
		}
	}
}

func relevant(ev fsnotify.Event, target string) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != target {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
