// Package notify renders the lock-key indicator through the desktop's own
// notification daemon instead of a dedicated overlay window. It speaks the
// org.freedesktop.Notifications interface over the session D-Bus.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"locklight/internal/indicator"
)

const (
	// busName is the well-known notification service name.
	busName = "org.freedesktop.Notifications"
	// objectPath is the notification object path.
	objectPath = "/org/freedesktop/Notifications"
)

// Urgency hint values per the notification spec.
const (
	urgencyLow      = byte(0)
	urgencyNormal   = byte(1)
	urgencyCritical = byte(2)
)

// Notifier implements indicator.Surface by sending desktop notifications.
// Each Show replaces the previous notification so only one banner exists.
type Notifier struct {
	conn    *dbus.Conn
	logger  *slog.Logger
	appName string
	lastID  uint32
}

// New connects to the session bus and returns a Notifier.
func New(appName string, logger *slog.Logger) (*Notifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if appName == "" {
		appName = "locklight"
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	return &Notifier{
		conn:    conn,
		logger:  logger,
		appName: appName,
	}, nil
}

// Show sends (or replaces) the status notification.
// The notification never expires on its own: the indicator owns the hide
// countdown and calls Hide when it elapses.
func (n *Notifier) Show(text string, style indicator.Style) {
	hints := map[string]dbus.Variant{
		// Keep the daemon from writing every toggle into its history.
		"transient": dbus.MakeVariant(true),
		"urgency":   dbus.MakeVariant(urgencyForStyle(style)),
	}

	obj := n.conn.Object(busName, objectPath)
	call := obj.Call(busName+".Notify", 0,
		n.appName,    // app_name
		n.lastID,     // replaces_id: update the banner in place
		"",           // app_icon
		"Lock keys",  // summary
		text,         // body
		[]string{},   // actions
		hints,        // hints
		int32(0),     // expire_timeout: never, we close it ourselves
	)
	if call.Err != nil {
		n.logger.Warn("failed to send notification", "error", call.Err)
		return
	}

	if err := call.Store(&n.lastID); err != nil {
		n.logger.Warn("failed to read notification id", "error", err)
	}
}

// Hide closes the current notification, if any.
func (n *Notifier) Hide() {
	if n.lastID == 0 {
		return
	}

	obj := n.conn.Object(busName, objectPath)
	if call := obj.Call(busName+".CloseNotification", 0, n.lastID); call.Err != nil {
		n.logger.Debug("failed to close notification", "id", n.lastID, "error", call.Err)
	}
	n.lastID = 0
}

// Close releases the bus connection.
func (n *Notifier) Close() error {
	return n.conn.Close()
}

// urgencyForStyle maps the indicator style to a notification urgency:
// routine all-off updates are low, a lit lock key is normal, and the
// permanent unsupported-platform notice is critical so daemons keep it up.
func urgencyForStyle(style indicator.Style) byte {
	switch style {
	case indicator.StyleActive:
		return urgencyNormal
	case indicator.StyleNotice:
		return urgencyCritical
	default:
		return urgencyLow
	}
}
