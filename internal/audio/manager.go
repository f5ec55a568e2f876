package audio

import (
	"log/slog"
	"sync"

	"locklight/internal/config"
	"locklight/internal/keystate"
)

// Manager maps lock-key state changes to the configured chimes.
type Manager struct {
	mu     sync.RWMutex
	logger *slog.Logger
	player *Player

	enabled bool
	onPath  string
	offPath string
}

// NewManager creates a new audio manager from the audio configuration.
func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		logger: logger,
		player: NewPlayer(logger),
	}
	m.applyConfig(cfg)
	return m
}

// applyConfig reads the audio section into the manager.
func (m *Manager) applyConfig(cfg *config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = cfg.Audio.Enabled
	m.onPath = cfg.Audio.Sounds.On
	m.offPath = cfg.Audio.Sounds.Off
	m.player.SetVolume(float64(cfg.Audio.Volume) / 100.0)
}

// Start preloads the configured chimes.
func (m *Manager) Start() {
	m.mu.RLock()
	enabled := m.enabled
	paths := []string{m.onPath, m.offPath}
	m.mu.RUnlock()

	if !enabled {
		return
	}

	loaded := 0
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := m.player.Preload(path); err != nil {
			m.logger.Warn("failed to preload chime", "path", path, "error", err)
			continue
		}
		loaded++
	}
	m.logger.Info("audio manager started", "chimes", loaded)
}

// Stop shuts down playback.
func (m *Manager) Stop() {
	m.player.Close()
	m.logger.Debug("audio manager stopped")
}

// UpdateConfig applies a hot-reloaded configuration and preloads any
// newly configured chimes.
func (m *Manager) UpdateConfig(cfg *config.Config) {
	m.applyConfig(cfg)
	m.Start()
}

// PlayForState plays the chime matching the new state: the "on" chime when
// any key is lit, the "off" chime when the last key went dark. Safe to call
// from any goroutine; playback errors are logged, never returned.
func (m *Manager) PlayForState(state keystate.State) {
	m.mu.RLock()
	enabled := m.enabled
	path := m.offPath
	if state.Any() {
		path = m.onPath
	}
	m.mu.RUnlock()

	if !enabled || path == "" {
		return
	}

	if err := m.player.Play(path); err != nil {
		m.logger.Debug("failed to play chime", "path", path, "error", err)
	}
}
