// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultHideTime    = 1500 * time.Millisecond
	DefaultPollingRate = 250 * time.Millisecond
	DefaultWidth       = 500
	DefaultHeight      = 80
	DefaultBackend     = BackendOverlay
	DefaultAppName     = "locklight"
)

// Backend selects how the indicator is rendered.
type Backend string

const (
	// BackendOverlay renders a GTK4 layer-shell window.
	BackendOverlay Backend = "overlay"
	// BackendNotify sends desktop notifications over D-Bus instead of
	// drawing its own window.
	BackendNotify Backend = "notify"
)

// ValidBackends returns all valid backend values.
func ValidBackends() []Backend {
	return []Backend{BackendOverlay, BackendNotify}
}

// Duration is a time.Duration that can be unmarshaled from human-readable
// strings ("1.5s", "250ms") or bare integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Bare integers are milliseconds, matching the CLI flags.
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '1.5s', '250ms' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config is the locklight configuration.
// Loaded from ~/.config/locklight/config.toml.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Audio   AudioConfig   `toml:"audio"`
	Notify  NotifyConfig  `toml:"notify"`
}

// DisplayConfig contains indicator display settings.
type DisplayConfig struct {
	Backend     string   `toml:"backend"`      // "overlay" or "notify"
	HideTime    Duration `toml:"hide_time"`    // How long the indicator stays visible
	PollingRate Duration `toml:"polling_rate"` // Lock-key sampling interval
	Width       int      `toml:"width"`        // Overlay width in pixels
	Height      int      `toml:"height"`       // Overlay height in pixels
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	Name        string `toml:"name"`         // Theme name without .css extension
	ColorScheme string `toml:"color_scheme"` // "system", "light", or "dark"
}

// ColorScheme represents the color scheme preference.
type ColorScheme string

const (
	ColorSchemeSystem ColorScheme = "system"
	ColorSchemeLight  ColorScheme = "light"
	ColorSchemeDark   ColorScheme = "dark"
)

// AudioConfig contains chime settings.
type AudioConfig struct {
	Enabled bool        `toml:"enabled"`
	Volume  int         `toml:"volume"` // 0-100
	Sounds  SoundConfig `toml:"sounds"`
}

// SoundConfig maps state transitions to sound file paths.
type SoundConfig struct {
	On  string `toml:"on"`  // Played when a lock key turns on
	Off string `toml:"off"` // Played when the last lock key turns off
}

// NotifyConfig contains settings for the notification backend.
type NotifyConfig struct {
	AppName string `toml:"app_name"` // Application name sent with notifications
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Backend:     string(DefaultBackend),
			HideTime:    Duration(DefaultHideTime),
			PollingRate: Duration(DefaultPollingRate),
			Width:       DefaultWidth,
			Height:      DefaultHeight,
		},
		Theme: ThemeConfig{
			Name:        "default",
			ColorScheme: string(ColorSchemeSystem),
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  100,
		},
		Notify: NotifyConfig{
			AppName: DefaultAppName,
		},
	}
}

// Path returns the default path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "locklight", "config.toml")
}

// Load loads configuration from the specified path.
// If path is empty, the default config path is used.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch Backend(c.Display.Backend) {
	case BackendOverlay, BackendNotify:
	default:
		return fmt.Errorf("invalid display backend %q (valid: overlay, notify)", c.Display.Backend)
	}
	if c.Display.HideTime.Duration() <= 0 {
		return fmt.Errorf("display.hide_time must be positive, got %s", c.Display.HideTime.Duration())
	}
	if c.Display.PollingRate.Duration() <= 0 {
		return fmt.Errorf("display.polling_rate must be positive, got %s", c.Display.PollingRate.Duration())
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("audio.volume must be 0-100, got %d", c.Audio.Volume)
	}
	return nil
}
