package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"locklight/internal/audio"
	"locklight/internal/config"
	"locklight/internal/display"
	"locklight/internal/indicator"
	"locklight/internal/keystate"
	"locklight/internal/notify"
	"locklight/internal/theme"
)

// appID is the GTK application id for the overlay backend.
const appID = "dev.locklight.indicator"

// Daemon runs the lock-key indicator until its context is cancelled.
type Daemon struct {
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
	reader     keystate.Reader
}

// New creates a daemon. configPath is the file watched for hot-reload;
// empty means the default location.
func New(cfg *config.Config, configPath string, logger *slog.Logger) *Daemon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Daemon{
		cfg:        cfg,
		configPath: configPath,
		logger:     logger,
		reader:     keystate.NewReader(),
	}
}

// Run starts the configured backend and blocks until shutdown.
func (d *Daemon) Run(ctx context.Context) error {
	switch config.Backend(d.cfg.Display.Backend) {
	case config.BackendNotify:
		return d.runNotify(ctx)
	default:
		return d.runOverlay(ctx)
	}
}

// runOverlay runs the GTK4 layer-shell overlay. Everything the indicator
// touches runs on the GTK main loop: the poll tick and hide countdown are
// glib timeouts, and hot-reload changes are marshalled in via IdleAdd.
func (d *Daemon) runOverlay(ctx context.Context) error {
	d.logger.Info("starting overlay backend",
		"hide_time", d.cfg.Display.HideTime.Duration(),
		"polling_rate", d.cfg.Display.PollingRate.Duration(),
	)

	app := adw.NewApplication(appID, 0)

	var (
		themeLoader   *theme.Loader
		audioManager  *audio.Manager
		configWatcher *ConfigWatcher
		stopPoll      func()
	)

	app.ConnectActivate(func() {
		cfg := d.cfg

		themeLoader = theme.NewLoader(d.logger)
		if err := themeLoader.LoadTheme(cfg.Theme.Name); err != nil {
			d.logger.Warn("failed to load theme, using default", "error", err)
		}
		themeLoader.Apply(nil)
		themeLoader.StartHotReload(ctx)

		audioManager = audio.NewManager(cfg, d.logger)
		audioManager.Start()

		window := display.NewWindow(&app.Application, cfg, d.logger)

		ind := indicator.New(d.reader, window,
			cfg.Display.HideTime.Duration(),
			display.ScheduleOnce,
			indicator.WithLogger(d.logger),
			indicator.WithChangeHook(func(s keystate.State) {
				go audioManager.PlayForState(s)
			}),
		)

		stopPoll = display.Repeat(cfg.Display.PollingRate.Duration(), ind.Tick)

		configWatcher = NewConfigWatcher(d.configPath, d.logger)
		configWatcher.SetReloadCallback(func(newCfg *config.Config) {
			glib.IdleAdd(func() {
				oldCfg := d.cfg
				d.cfg = newCfg

				ind.SetHideAfter(newCfg.Display.HideTime.Duration())
				audioManager.UpdateConfig(newCfg)

				if newCfg.Display.PollingRate != oldCfg.Display.PollingRate {
					stopPoll()
					stopPoll = display.Repeat(newCfg.Display.PollingRate.Duration(), ind.Tick)
				}

				if newCfg.Theme.Name != oldCfg.Theme.Name {
					if err := themeLoader.LoadTheme(newCfg.Theme.Name); err != nil {
						d.logger.Warn("failed to load new theme", "theme", newCfg.Theme.Name, "error", err)
					} else {
						themeLoader.StartHotReload(ctx)
					}
				}

				d.logger.Info("configuration reloaded")
			})
		})
		if err := configWatcher.Start(ctx); err != nil {
			d.logger.Warn("failed to start config watcher", "error", err)
		}

		d.logger.Info("locklight ready", "backend", "overlay", "supported", d.reader.Supported())
	})

	// Shut the GTK loop down when the context is cancelled (signals).
	go func() {
		<-ctx.Done()
		glib.IdleAdd(func() {
			app.Quit()
		})
	}()

	app.ConnectShutdown(func() {
		if stopPoll != nil {
			stopPoll()
		}
		if configWatcher != nil {
			configWatcher.Stop()
		}
		if themeLoader != nil {
			themeLoader.StopHotReload()
		}
		if audioManager != nil {
			audioManager.Stop()
		}
	})

	// Args were consumed by the CLI already.
	if status := app.Run(nil); status != 0 {
		return fmt.Errorf("application exited with status %d", status)
	}
	return nil
}

// runNotify runs the headless notification backend: a single-goroutine
// event loop with a poll ticker and a job channel that hide countdowns and
// hot-reload updates are posted to, so the indicator is never touched
// concurrently.
func (d *Daemon) runNotify(ctx context.Context) error {
	d.logger.Info("starting notification backend",
		"hide_time", d.cfg.Display.HideTime.Duration(),
		"polling_rate", d.cfg.Display.PollingRate.Duration(),
	)

	notifier, err := notify.New(d.cfg.Notify.AppName, d.logger)
	if err != nil {
		return fmt.Errorf("notification backend unavailable: %w", err)
	}
	defer func() { _ = notifier.Close() }()

	audioManager := audio.NewManager(d.cfg, d.logger)
	audioManager.Start()
	defer audioManager.Stop()

	jobs := make(chan func(), 16)
	schedule := loopSchedule(ctx, jobs)

	ind := indicator.New(d.reader, notifier,
		d.cfg.Display.HideTime.Duration(),
		schedule,
		indicator.WithLogger(d.logger),
		indicator.WithChangeHook(func(s keystate.State) {
			go audioManager.PlayForState(s)
		}),
	)

	ticker := time.NewTicker(d.cfg.Display.PollingRate.Duration())
	defer ticker.Stop()

	configWatcher := NewConfigWatcher(d.configPath, d.logger)
	configWatcher.SetReloadCallback(func(newCfg *config.Config) {
		select {
		case jobs <- func() {
			old := d.cfg
			d.cfg = newCfg
			ind.SetHideAfter(newCfg.Display.HideTime.Duration())
			audioManager.UpdateConfig(newCfg)
			if newCfg.Display.PollingRate != old.Display.PollingRate {
				ticker.Reset(newCfg.Display.PollingRate.Duration())
			}
			d.logger.Info("configuration reloaded")
		}:
		case <-ctx.Done():
		}
	})
	if err := configWatcher.Start(ctx); err != nil {
		d.logger.Warn("failed to start config watcher", "error", err)
	}
	defer configWatcher.Stop()

	d.logger.Info("locklight ready", "backend", "notify", "supported", d.reader.Supported())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ind.Tick()
		case job := <-jobs:
			job()
		}
	}
}

// loopSchedule returns a ScheduleFunc whose timers post their callback onto
// the loop's job channel. The cancelled flag makes cancellation effective
// even after the timer has fired: a stale job still sitting in the channel
// when cancel runs is a no-op by the time the loop picks it up. The flag is
// only touched from the loop goroutine.
func loopSchedule(ctx context.Context, jobs chan func()) indicator.ScheduleFunc {
	return func(dur time.Duration, fn func()) func() {
		cancelled := false
		t := time.AfterFunc(dur, func() {
			select {
			case jobs <- func() {
				if !cancelled {
					fn()
				}
			}:
			case <-ctx.Done():
			}
		})
		return func() {
			cancelled = true
			t.Stop()
		}
	}
}
