//go:build linux

package keystate

import (
	"os"
	"path/filepath"
	"strings"
)

// ledsDir is the sysfs directory exposing keyboard LED state.
// Overridable in tests.
var ledsDir = "/sys/class/leds"

// ledReader reads lock-key state from the kernel input LED class.
// The input core registers a "inputN::capslock" (numlock, scrolllock) LED
// for every keyboard, whether or not a physical LED exists, and its
// brightness file reflects the toggle state.
type ledReader struct {
	caps   []string
	num    []string
	scroll []string
}

func newPlatformReader() Reader {
	entries, err := os.ReadDir(ledsDir)
	if err != nil {
		return unsupportedReader{}
	}

	r := &ledReader{}
	for _, entry := range entries {
		name := entry.Name()
		brightness := filepath.Join(ledsDir, name, "brightness")
		switch {
		case strings.HasSuffix(name, "::capslock"):
			r.caps = append(r.caps, brightness)
		case strings.HasSuffix(name, "::numlock"):
			r.num = append(r.num, brightness)
		case strings.HasSuffix(name, "::scrolllock"):
			r.scroll = append(r.scroll, brightness)
		}
	}

	if len(r.caps) == 0 && len(r.num) == 0 && len(r.scroll) == 0 {
		return unsupportedReader{}
	}
	return r
}

func (r *ledReader) Read() State {
	return State{
		Caps:   anyLit(r.caps),
		Num:    anyLit(r.num),
		Scroll: anyLit(r.scroll),
	}
}

func (r *ledReader) Supported() bool { return true }

// anyLit reports whether any of the brightness files reads non-zero.
// Multiple keyboards each register their own LED; the key is on if any
// of them says so. Read failures count as off.
func anyLit(paths []string) bool {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" && v != "0" {
			return true
		}
	}
	return false
}
