package daemon

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"locklight/internal/config"
)

// ConfigWatcher watches the config file for changes and validates new
// configs before handing them to the reload callback. Invalid files are
// rejected and the last good configuration stays in effect.
type ConfigWatcher struct {
	mu     sync.RWMutex
	logger *slog.Logger

	configPath  string
	lastModTime time.Time

	pollInterval time.Duration

	onReloadCallback func(newConfig *config.Config)

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewConfigWatcher creates a ConfigWatcher for the given config path.
// An empty path means the default config location.
func NewConfigWatcher(configPath string, logger *slog.Logger) *ConfigWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if configPath == "" {
		configPath = config.Path()
	}
	return &ConfigWatcher{
		logger:       logger,
		configPath:   configPath,
		pollInterval: time.Second,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// SetReloadCallback sets the callback invoked with each new valid config.
func (w *ConfigWatcher) SetReloadCallback(callback func(newConfig *config.Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReloadCallback = callback
}

// Start begins watching the config file for changes.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true

	if info, err := os.Stat(w.configPath); err == nil {
		w.lastModTime = info.ModTime()
	}

	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.watchLoop(ctx)

	w.logger.Debug("config watcher started", "path", w.configPath, "interval", w.pollInterval)
	return nil
}

// Stop stops watching the config file.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	<-w.doneCh
	w.logger.Debug("config watcher stopped")
}

// watchLoop is the main polling loop.
func (w *ConfigWatcher) watchLoop(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// checkForChanges reloads the config if the file has been modified.
func (w *ConfigWatcher) checkForChanges() {
	w.mu.RLock()
	callback := w.onReloadCallback
	lastModTime := w.lastModTime
	w.mu.RUnlock()

	info, err := os.Stat(w.configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			w.logger.Debug("failed to stat config file", "path", w.configPath, "error", err)
		}
		return
	}

	modTime := info.ModTime()
	if !modTime.After(lastModTime) {
		return
	}

	w.mu.Lock()
	w.lastModTime = modTime
	w.mu.Unlock()

	newConfig, err := config.Load(w.configPath)
	if err != nil {
		w.logger.Warn("ignoring invalid config file", "path", w.configPath, "error", err)
		return
	}

	w.logger.Debug("config file changed", "path", w.configPath, "modTime", modTime)

	if callback != nil {
		callback(newConfig)
	}
}
