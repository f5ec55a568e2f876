package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a user theme file for changes and triggers hot-reload.
type Watcher struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	theme   *Theme

	onChangeCallback func(css string)

	done    chan struct{}
	running bool
}

// NewWatcher creates a new theme watcher for the given theme.
func NewWatcher(theme *Theme, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		logger:  logger,
		watcher: fsWatcher,
		theme:   theme,
		done:    make(chan struct{}),
	}, nil
}

// SetChangeCallback sets the callback invoked with the new CSS on change.
func (w *Watcher) SetChangeCallback(callback func(css string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching the theme file for changes.
// Embedded themes have no file and are not watched.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running || w.theme.IsEmbedded() {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for editors
	// that replace the file on save).
	dir := filepath.Dir(w.theme.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.watch(ctx)

	w.logger.Debug("theme watcher started", "path", w.theme.Path)
	return nil
}

// Stop stops watching the theme file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	_ = w.watcher.Close()
	w.logger.Debug("theme watcher stopped")
}

// watch is the main watch loop.
func (w *Watcher) watch(ctx context.Context) {
	filename := filepath.Base(w.theme.Path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Debug("theme watcher error", "error", err)
		}
	}
}

// reload re-reads the theme and fires the callback if the CSS changed.
func (w *Watcher) reload() {
	w.mu.RLock()
	callback := w.onChangeCallback
	w.mu.RUnlock()

	changed, err := w.theme.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", w.theme.Path, "error", err)
		return
	}
	if !changed {
		return
	}

	w.logger.Info("theme file changed, reloading", "path", w.theme.Path)
	if callback != nil {
		callback(w.theme.CSS)
	}
}
