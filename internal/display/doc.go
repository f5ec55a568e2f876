// Package display implements the GTK4 overlay window for the lock-key
// indicator. The window is frameless, always on top via Wayland
// layer-shell, and centered on the primary output. It also provides the
// glib main-loop timers that drive the poll tick and the hide countdown.
package display
