// Package indicator implements the visibility state machine that drives the
// lock-key status surface: poll, compare to the last displayed state, show
// on change, auto-hide after a countdown.
package indicator

import (
	"log/slog"
	"sync"
	"time"

	"locklight/internal/keystate"
)

// UnsupportedText is shown when no key-state backend exists on this platform.
const UnsupportedText = "Lock key monitoring is not supported on this platform"

// Style selects the visual treatment of the surface.
type Style int

const (
	// StyleInactive is used when all lock keys are off.
	StyleInactive Style = iota
	// StyleActive is used when at least one lock key is on.
	StyleActive
	// StyleNotice is used for the static unsupported-platform message.
	StyleNotice
)

// String returns the CSS-class name for the style.
func (s Style) String() string {
	switch s {
	case StyleActive:
		return "active"
	case StyleNotice:
		return "notice"
	default:
		return "inactive"
	}
}

// Surface is the display the indicator draws on. Implementations are the
// GTK overlay window and the D-Bus notification backend.
type Surface interface {
	// Show makes the surface visible with the given text and style.
	// Calling Show on an already visible surface updates it in place.
	Show(text string, style Style)
	// Hide makes the surface invisible.
	Hide()
}

// ScheduleFunc arms a one-shot timer that runs fn after d on the event loop
// the indicator lives on. The returned function cancels the timer; it is a
// no-op once fn has run.
type ScheduleFunc func(d time.Duration, fn func()) (cancel func())

// ChangeHook is invoked after the surface was updated for a state change.
type ChangeHook func(keystate.State)

// Option configures an Indicator.
type Option func(*Indicator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Indicator) { in.logger = logger }
}

// WithChangeHook registers a hook fired on every displayed state change.
func WithChangeHook(hook ChangeHook) Option {
	return func(in *Indicator) { in.hooks = append(in.hooks, hook) }
}

// Indicator is the visibility state machine. It is not safe for concurrent
// use: Tick and the scheduled hide callback must run on the same event loop
// (the GTK main loop, or the daemon's headless loop).
type Indicator struct {
	reader   keystate.Reader
	surface  Surface
	schedule ScheduleFunc
	logger   *slog.Logger
	hooks    []ChangeHook

	// hideAfter is the only field touched from outside the event loop
	// (config hot-reload), hence the mutex.
	mu        sync.RWMutex
	hideAfter time.Duration

	last        *keystate.State // nil until the first state was displayed
	visible     bool
	noticeShown bool
	cancelHide  func()
}

// New creates an indicator in the hidden state with no prior displayed state.
func New(reader keystate.Reader, surface Surface, hideAfter time.Duration, schedule ScheduleFunc, opts ...Option) *Indicator {
	in := &Indicator{
		reader:    reader,
		surface:   surface,
		schedule:  schedule,
		hideAfter: hideAfter,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Tick samples the current lock-key state and updates the surface.
// Called on every poll interval.
func (in *Indicator) Tick() {
	if !in.reader.Supported() {
		// No backend: show the notice once and leave it up. No countdown
		// is armed, so the message stays until the process exits.
		if !in.noticeShown {
			in.surface.Show(UnsupportedText, StyleNotice)
			in.noticeShown = true
			in.visible = true
			in.logger.Info("no lock-key backend on this platform, showing static notice")
		}
		return
	}

	current := in.reader.Read()
	if in.last != nil && current == *in.last {
		return
	}

	state := current
	in.last = &state

	style := StyleInactive
	if current.Any() {
		style = StyleActive
	}
	in.surface.Show(current.Text(), style)
	in.visible = true

	// Restart the hide countdown: at most one pending hide exists.
	if in.cancelHide != nil {
		in.cancelHide()
	}
	in.cancelHide = in.schedule(in.HideAfter(), in.hideNow)

	in.logger.Debug("lock-key state changed",
		"caps", current.Caps,
		"num", current.Num,
		"scroll", current.Scroll,
	)

	for _, hook := range in.hooks {
		hook(current)
	}
}

// hideNow is the countdown callback.
func (in *Indicator) hideNow() {
	in.cancelHide = nil
	if !in.visible {
		return
	}
	in.surface.Hide()
	in.visible = false
}

// Visible reports whether the surface is currently shown.
func (in *Indicator) Visible() bool {
	return in.visible
}

// HideAfter returns the configured hide countdown duration.
func (in *Indicator) HideAfter() time.Duration {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.hideAfter
}

// SetHideAfter updates the hide countdown duration. A countdown already
// running keeps its original deadline; the new duration applies from the
// next state change.
func (in *Indicator) SetHideAfter(d time.Duration) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.hideAfter = d
}
