package theme

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Loader handles loading and applying CSS themes with hot-reload support.
type Loader struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	provider  *gtk.CSSProvider
	themesDir string
	theme     *Theme
	watcher   *Watcher
}

// NewLoader creates a new theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	return &Loader{
		logger:    logger,
		provider:  gtk.NewCSSProvider(),
		themesDir: themesDir,
	}
}

// LoadTheme loads a theme by name. A file in the user themes directory
// overrides a bundled theme of the same name; an unknown name falls back
// to the bundled default.
func (l *Loader) LoadTheme(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" {
		themePath := filepath.Join(l.themesDir, name+".css")
		if _, err := os.Stat(themePath); err == nil {
			theme, err := NewTheme(name, themePath)
			if err != nil {
				l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
			} else {
				l.setThemeLocked(theme)
				l.logger.Info("loaded user theme", "name", name, "path", themePath)
				return nil
			}
		}
	}

	if theme, found := NewEmbeddedTheme(name); found {
		l.setThemeLocked(theme)
		l.logger.Info("loaded bundled theme", "name", name)
		return nil
	}

	l.logger.Warn("theme not found, using default", "theme", name)
	theme, _ := NewEmbeddedTheme(DefaultThemeName)
	l.setThemeLocked(theme)
	return nil
}

// setThemeLocked installs a theme into the CSS provider. Caller holds the lock.
func (l *Loader) setThemeLocked(theme *Theme) {
	l.theme = theme
	l.provider.LoadFromString(theme.CSS)
}

// Theme returns the currently loaded theme.
func (l *Loader) Theme() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// CurrentTheme returns the name of the currently loaded theme.
func (l *Loader) CurrentTheme() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.theme == nil {
		return ""
	}
	return l.theme.Name
}

// Apply applies the loaded theme to a display.
// Must be called after the GTK application is initialized.
func (l *Loader) Apply(display *gdk.Display) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if display == nil {
		display = gdk.DisplayGetDefault()
	}
	if display == nil {
		l.logger.Warn("no display available, cannot apply theme")
		return
	}

	gtk.StyleContextAddProviderForDisplay(
		display,
		l.provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	l.logger.Debug("applied theme to display", "name", l.CurrentThemeLocked())
}

// CurrentThemeLocked returns the current theme name without locking.
// Only for use while the lock is already held.
func (l *Loader) CurrentThemeLocked() string {
	if l.theme == nil {
		return ""
	}
	return l.theme.Name
}

// StartHotReload starts watching the current theme file for changes.
// Embedded themes are not watched.
func (l *Loader) StartHotReload(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.theme == nil || l.theme.IsEmbedded() {
		l.logger.Debug("not starting hot-reload for embedded theme")
		return
	}

	if l.watcher != nil {
		l.watcher.Stop()
	}

	watcher, err := NewWatcher(l.theme, l.logger)
	if err != nil {
		l.logger.Warn("failed to create theme watcher", "error", err)
		return
	}
	l.watcher = watcher

	l.watcher.SetChangeCallback(func(css string) {
		l.mu.Lock()
		l.provider.LoadFromString(css)
		name := l.CurrentThemeLocked()
		l.mu.Unlock()
		l.logger.Info("hot-reloaded theme", "name", name)
	})

	if err := l.watcher.Start(ctx); err != nil {
		l.logger.Warn("failed to start theme watcher", "error", err)
	}
}

// StopHotReload stops watching the theme for changes.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		l.watcher.Stop()
		l.watcher = nil
	}
}

// ColorSchemeClass resolves the configured color scheme preference to the
// "light" or "dark" CSS class. "system" asks libadwaita for the desktop
// preference.
func ColorSchemeClass(scheme string) string {
	switch scheme {
	case "light":
		return "light"
	case "dark":
		return "dark"
	default:
		if styleManager := adw.StyleManagerGetDefault(); styleManager != nil && styleManager.Dark() {
			return "dark"
		}
		return "light"
	}
}
