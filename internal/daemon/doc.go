// Package daemon provides the main orchestration for the locklight
// indicator. It wires the key-state reader, the visibility state machine,
// the selected display backend, theming, audio, and configuration
// hot-reload.
package daemon
