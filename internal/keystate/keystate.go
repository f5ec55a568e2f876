// Package keystate reads the toggle state of the keyboard lock keys
// (Caps Lock, Num Lock, Scroll Lock) from the operating system.
package keystate

// State is a snapshot of the three lock-key toggle states.
// The zero value means all keys off.
type State struct {
	Caps   bool
	Num    bool
	Scroll bool
}

// Any reports whether at least one lock key is on.
func (s State) Any() bool {
	return s.Caps || s.Num || s.Scroll
}

// Text returns the indicator label text for this state,
// e.g. "CAPS: ON | NUM: OFF | SCROLL: OFF".
func (s State) Text() string {
	return "CAPS: " + onOff(s.Caps) + " | NUM: " + onOff(s.Num) + " | SCROLL: " + onOff(s.Scroll)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Reader reads the current lock-key state from the OS.
//
// Read must never block and never fail: a key whose state cannot be
// determined reads as off. Supported reports whether this platform has a
// real backend; an unsupported reader always returns the zero State.
type Reader interface {
	Read() State
	Supported() bool
}

// NewReader returns the lock-key reader for the current platform.
// Platforms without a backend get a reader that is always all-off and
// reports Supported() == false.
func NewReader() Reader {
	return newPlatformReader()
}

// unsupportedReader is the fallback for platforms without a key-state API.
type unsupportedReader struct{}

func (unsupportedReader) Read() State     { return State{} }
func (unsupportedReader) Supported() bool { return false }
