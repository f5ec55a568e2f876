package keystate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateText(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"all_off", State{}, "CAPS: OFF | NUM: OFF | SCROLL: OFF"},
		{"caps_only", State{Caps: true}, "CAPS: ON | NUM: OFF | SCROLL: OFF"},
		{"num_only", State{Num: true}, "CAPS: OFF | NUM: ON | SCROLL: OFF"},
		{"scroll_only", State{Scroll: true}, "CAPS: OFF | NUM: OFF | SCROLL: ON"},
		{"caps_num", State{Caps: true, Num: true}, "CAPS: ON | NUM: ON | SCROLL: OFF"},
		{"all_on", State{Caps: true, Num: true, Scroll: true}, "CAPS: ON | NUM: ON | SCROLL: ON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Text())
		})
	}
}

func TestStateAny(t *testing.T) {
	// All 8 combinations: Any is true iff at least one bit is set.
	for _, caps := range []bool{false, true} {
		for _, num := range []bool{false, true} {
			for _, scroll := range []bool{false, true} {
				s := State{Caps: caps, Num: num, Scroll: scroll}
				assert.Equal(t, caps || num || scroll, s.Any(), "state: %+v", s)
			}
		}
	}
}

func TestStateEquality(t *testing.T) {
	a := State{Caps: true}
	b := State{Caps: true}
	c := State{Num: true}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestUnsupportedReader(t *testing.T) {
	r := unsupportedReader{}

	assert.False(t, r.Supported())
	assert.Equal(t, State{}, r.Read())
}
