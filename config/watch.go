package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long Watch waits for writes to settle before reloading.
const reloadDelay = 250 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes the result
// to fn. It blocks until ctx is cancelled. The directory is watched so
// editors that replace the file are seen too. Bursts of events collapse
// into one reload.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	return watch(ctx, path, reloadDelay, fn)
}

func watch(ctx context.Context, path string, delay time.Duration, fn func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	reload := func() {
		if ctx.Err() != nil {
			return
		}
		cfg, err := LoadFrom(path)
		if err != nil {
			slog.Warn("reload config", "path", path, "error", err)
			return
		}
		fn(cfg)
	}
	debounced := debounce.New(delay)

	name := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounced(reload)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch config", "error", err)
		}
	}
}
