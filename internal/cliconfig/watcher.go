package cliconfig

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of fsnotify events most editors emit
// for a single save into one callback.
const debounceDelay = 100 * time.Millisecond

// Watcher monitors one config file via fsnotify and invokes a callback
// after each change settles.
type Watcher struct {
	path   string
	onSave func()
	log    *slog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for path. onSave runs on the watcher's
// goroutine after every debounced change.
func NewWatcher(path string, log *slog.Logger, onSave func()) *Watcher {
	return &Watcher{path: path, onSave: onSave, log: log}
}

// Run watches until the context is cancelled. The parent directory is
// watched rather than the file itself: editors that replace on save briefly
// remove the file, which would drop a direct watch.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	w.log.Info("watching config file", "path", w.path)

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleSave()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) scheduleSave() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.onSave)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}
