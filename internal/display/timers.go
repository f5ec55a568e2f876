package display

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// ScheduleOnce arms a one-shot glib timeout on the GTK main loop and
// returns a cancel function. Implements indicator.ScheduleFunc.
func ScheduleOnce(d time.Duration, fn func()) (cancel func()) {
	fired := false
	id := glib.TimeoutAdd(uint(d.Milliseconds()), func() bool {
		fired = true
		fn()
		return false
	})
	return func() {
		// Removing an already-fired source triggers a glib warning.
		if !fired {
			glib.SourceRemove(id)
		}
	}
}

// Repeat runs fn on the GTK main loop every interval until the returned
// stop function is called. Used for the poll tick.
func Repeat(interval time.Duration, fn func()) (stop func()) {
	stopped := false
	id := glib.TimeoutAdd(uint(interval.Milliseconds()), func() bool {
		if stopped {
			return false
		}
		fn()
		return true
	})
	return func() {
		if !stopped {
			stopped = true
			glib.SourceRemove(id)
		}
	}
}
