package output

import (
	"fmt"
	"io"
)

// PlainFormatter formats the status as the same single line the overlay
// shows.
type PlainFormatter struct{}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format writes the status as a single line of text.
func (f *PlainFormatter) Format(w io.Writer, status Status) error {
	if !status.Supported {
		_, err := fmt.Fprintln(w, "lock key states are not available on this platform")
		return err
	}
	_, err := fmt.Fprintln(w, status.State().Text())
	return err
}
