package theme

import (
	"os"
	"path/filepath"
	"time"
)

// Theme represents a CSS theme with metadata.
type Theme struct {
	Name      string    // Theme name (without .css extension)
	Path      string    // Full path to the CSS file (empty for embedded)
	CSS       string    // The CSS content
	ModTime   time.Time // Last modification time (zero for embedded)
	IsDefault bool      // True if this is the embedded default theme
}

// NewTheme creates a Theme by loading a CSS file from disk.
func NewTheme(name, path string) (*Theme, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &Theme{
		Name:    name,
		Path:    path,
		CSS:     string(css),
		ModTime: info.ModTime(),
	}, nil
}

// NewEmbeddedTheme creates a Theme from a bundled CSS file.
// Returns false if no bundled theme has that name.
func NewEmbeddedTheme(name string) (*Theme, bool) {
	css, found := GetEmbeddedTheme(name)
	if !found {
		return nil, false
	}
	return &Theme{
		Name:      name,
		CSS:       css,
		IsDefault: name == DefaultThemeName,
	}, true
}

// IsEmbedded reports whether the theme came from the bundled set.
func (t *Theme) IsEmbedded() bool {
	return t.Path == ""
}

// Reload re-reads the theme from disk. Returns true if the content changed.
// Embedded themes never change.
func (t *Theme) Reload() (bool, error) {
	if t.IsEmbedded() {
		return false, nil
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return false, err
	}
	if !info.ModTime().After(t.ModTime) {
		return false, nil
	}

	css, err := os.ReadFile(t.Path)
	if err != nil {
		return false, err
	}

	changed := t.CSS != string(css)
	t.CSS = string(css)
	t.ModTime = info.ModTime()
	return changed, nil
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "locklight", "themes"), nil
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name      string
	Path      string
	IsBundled bool
}

// ListAvailableThemes lists all available themes, bundled first.
// A user theme with the same name as a bundled one overrides it.
func ListAvailableThemes() []ThemeInfo {
	seen := make(map[string]bool)
	var themes []ThemeInfo

	themesDir, err := ThemesDir()
	if err == nil {
		entries, err := os.ReadDir(themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				if filepath.Ext(name) != ".css" {
					continue
				}
				themeName := name[:len(name)-4]
				if !seen[themeName] {
					seen[themeName] = true
					themes = append(themes, ThemeInfo{
						Name: themeName,
						Path: filepath.Join(themesDir, name),
					})
				}
			}
		}
	}

	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, ThemeInfo{Name: name, IsBundled: true})
		}
	}

	return themes
}
