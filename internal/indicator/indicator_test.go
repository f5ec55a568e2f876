package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locklight/internal/keystate"
)

// fakeReader returns a scripted state.
type fakeReader struct {
	state     keystate.State
	supported bool
}

func (r *fakeReader) Read() keystate.State { return r.state }
func (r *fakeReader) Supported() bool      { return r.supported }

// showCall records one Surface.Show invocation.
type showCall struct {
	text  string
	style Style
}

// fakeSurface records show/hide calls.
type fakeSurface struct {
	shows []showCall
	hides int
}

func (s *fakeSurface) Show(text string, style Style) {
	s.shows = append(s.shows, showCall{text: text, style: style})
}

func (s *fakeSurface) Hide() { s.hides++ }

// fakeTimer is one armed one-shot countdown.
type fakeTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// fakeScheduler collects armed timers and lets tests fire them manually.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) func() {
	t := &fakeTimer{d: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// fire runs a timer's callback unless it was cancelled.
func (s *fakeScheduler) fire(t *fakeTimer) {
	if t.cancelled || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

// pending returns the timers that are neither cancelled nor fired.
func (s *fakeScheduler) pending() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

func newTestIndicator(reader keystate.Reader, hideAfter time.Duration) (*Indicator, *fakeSurface, *fakeScheduler) {
	surface := &fakeSurface{}
	sched := &fakeScheduler{}
	in := New(reader, surface, hideAfter, sched.schedule)
	return in, surface, sched
}

func TestFirstTickShowsState(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Caps: true}, supported: true}
	in, surface, sched := newTestIndicator(reader, 1500*time.Millisecond)

	in.Tick()

	require.Len(t, surface.shows, 1)
	assert.Equal(t, "CAPS: ON | NUM: OFF | SCROLL: OFF", surface.shows[0].text)
	assert.Equal(t, StyleActive, surface.shows[0].style)
	assert.True(t, in.Visible())

	require.Len(t, sched.timers, 1)
	assert.Equal(t, 1500*time.Millisecond, sched.timers[0].d)
}

func TestFirstTickAllOffStillShows(t *testing.T) {
	// The unset sentinel counts as "no prior state", so even an all-off
	// first sample diverges and gets displayed.
	reader := &fakeReader{supported: true}
	in, surface, _ := newTestIndicator(reader, time.Second)

	in.Tick()

	require.Len(t, surface.shows, 1)
	assert.Equal(t, "CAPS: OFF | NUM: OFF | SCROLL: OFF", surface.shows[0].text)
	assert.Equal(t, StyleInactive, surface.shows[0].style)
	assert.True(t, in.Visible())
}

func TestUnchangedStateIsNoOp(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Caps: true}, supported: true}
	in, surface, sched := newTestIndicator(reader, time.Second)

	for i := 0; i < 5; i++ {
		in.Tick()
	}

	// One show and one armed countdown for the first divergence, nothing after.
	assert.Len(t, surface.shows, 1)
	assert.Len(t, sched.timers, 1)
	assert.Zero(t, surface.hides)
}

func TestCountdownHidesExactlyOnce(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Num: true}, supported: true}
	in, surface, sched := newTestIndicator(reader, time.Second)

	in.Tick()
	require.Len(t, sched.pending(), 1)

	sched.fire(sched.timers[0])

	assert.Equal(t, 1, surface.hides)
	assert.False(t, in.Visible())
	assert.Empty(t, sched.pending())

	// A stable state after hiding does not bring the window back.
	in.Tick()
	assert.Len(t, surface.shows, 1)
	assert.False(t, in.Visible())
}

func TestChangeSupersedesPendingCountdown(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Caps: true}, supported: true}
	in, surface, sched := newTestIndicator(reader, time.Second)

	in.Tick()
	first := sched.timers[0]

	// State changes before the first countdown fires.
	reader.state = keystate.State{Caps: true, Num: true}
	in.Tick()

	require.Len(t, surface.shows, 2)
	assert.Equal(t, "CAPS: ON | NUM: ON | SCROLL: OFF", surface.shows[1].text)

	// The old countdown is cancelled and a fresh full-duration one armed.
	assert.True(t, first.cancelled)
	require.Len(t, sched.timers, 2)
	assert.Equal(t, time.Second, sched.timers[1].d)

	// Firing the superseded timer does nothing.
	sched.fire(first)
	assert.Zero(t, surface.hides)
	assert.True(t, in.Visible())

	// Only the replacement hides.
	sched.fire(sched.timers[1])
	assert.Equal(t, 1, surface.hides)
	assert.False(t, in.Visible())
}

func TestChangeAfterHideShowsAgain(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Caps: true}, supported: true}
	in, surface, sched := newTestIndicator(reader, time.Second)

	in.Tick()
	sched.fire(sched.timers[0])
	require.False(t, in.Visible())

	reader.state = keystate.State{}
	in.Tick()

	require.Len(t, surface.shows, 2)
	assert.Equal(t, StyleInactive, surface.shows[1].style)
	assert.True(t, in.Visible())
	assert.Len(t, sched.pending(), 1)
}

func TestStyleForAllCombinations(t *testing.T) {
	// Active iff any of the three booleans is set, for all 8 combinations.
	for _, caps := range []bool{false, true} {
		for _, num := range []bool{false, true} {
			for _, scroll := range []bool{false, true} {
				state := keystate.State{Caps: caps, Num: num, Scroll: scroll}
				reader := &fakeReader{state: state, supported: true}
				_, surface, _ := func() (*Indicator, *fakeSurface, *fakeScheduler) {
					in, s, sc := newTestIndicator(reader, time.Second)
					in.Tick()
					return in, s, sc
				}()

				require.Len(t, surface.shows, 1, "state: %+v", state)
				expected := StyleInactive
				if state.Any() {
					expected = StyleActive
				}
				assert.Equal(t, expected, surface.shows[0].style, "state: %+v", state)
			}
		}
	}
}

func TestUnsupportedPlatformNoticeShownOnce(t *testing.T) {
	reader := &fakeReader{supported: false}
	in, surface, sched := newTestIndicator(reader, time.Second)

	for i := 0; i < 4; i++ {
		in.Tick()
	}

	require.Len(t, surface.shows, 1)
	assert.Equal(t, UnsupportedText, surface.shows[0].text)
	assert.Equal(t, StyleNotice, surface.shows[0].style)

	// No countdown armed: the notice never hides.
	assert.Empty(t, sched.timers)
	assert.Zero(t, surface.hides)
	assert.True(t, in.Visible())
}

func TestSetHideAfterAppliesToNextChange(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Caps: true}, supported: true}
	in, _, sched := newTestIndicator(reader, time.Second)

	in.Tick()
	require.Equal(t, time.Second, sched.timers[0].d)

	in.SetHideAfter(3 * time.Second)
	reader.state = keystate.State{}
	in.Tick()

	require.Len(t, sched.timers, 2)
	assert.Equal(t, 3*time.Second, sched.timers[1].d)
}

func TestChangeHookFiresOnChangeOnly(t *testing.T) {
	reader := &fakeReader{state: keystate.State{Scroll: true}, supported: true}
	surface := &fakeSurface{}
	sched := &fakeScheduler{}

	var seen []keystate.State
	in := New(reader, surface, time.Second, sched.schedule,
		WithChangeHook(func(s keystate.State) { seen = append(seen, s) }))

	in.Tick()
	in.Tick()
	reader.state = keystate.State{}
	in.Tick()

	require.Len(t, seen, 2)
	assert.Equal(t, keystate.State{Scroll: true}, seen[0])
	assert.Equal(t, keystate.State{}, seen[1])
}

func TestStyleClassNames(t *testing.T) {
	assert.Equal(t, "inactive", StyleInactive.String())
	assert.Equal(t, "active", StyleActive.String())
	assert.Equal(t, "notice", StyleNotice.String())
}
