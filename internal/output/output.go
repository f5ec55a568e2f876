// Package output provides output formatters for lock-key status.
package output

import (
	"io"

	"locklight/internal/keystate"
)

// Status is the point-in-time lock-key snapshot emitted by the status
// command.
type Status struct {
	CapsLock   bool `json:"caps_lock" yaml:"caps_lock"`
	NumLock    bool `json:"num_lock" yaml:"num_lock"`
	ScrollLock bool `json:"scroll_lock" yaml:"scroll_lock"`
	Supported  bool `json:"supported" yaml:"supported"`
}

// NewStatus builds a Status from a reader snapshot.
func NewStatus(state keystate.State, supported bool) Status {
	return Status{
		CapsLock:   state.Caps,
		NumLock:    state.Num,
		ScrollLock: state.Scroll,
		Supported:  supported,
	}
}

// State converts the status back into a key state.
func (s Status) State() keystate.State {
	return keystate.State{Caps: s.CapsLock, Num: s.NumLock, Scroll: s.ScrollLock}
}

// Formatter formats a status snapshot for output.
type Formatter interface {
	// Format writes the formatted status to the writer.
	Format(w io.Writer, status Status) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter()
	}
}
