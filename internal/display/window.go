package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"locklight/internal/config"
	"locklight/internal/indicator"
	"locklight/internal/theme"
)

// styleClasses are the mutually exclusive state classes on the indicator box.
var styleClasses = []string{"inactive", "active", "notice"}

// Window is the overlay window showing the lock-key status.
// It implements indicator.Surface.
type Window struct {
	window *gtk.Window
	box    *gtk.Box
	label  *gtk.Label
	logger *slog.Logger
}

// NewWindow creates the overlay window. It starts hidden; the indicator
// presents it on the first state change.
func NewWindow(app *gtk.Application, cfg *config.Config, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Window{logger: logger}

	w.window = gtk.NewWindow()
	w.window.SetApplication(app)
	w.window.SetDecorated(false)
	w.window.SetResizable(false)
	w.window.SetDefaultSize(cfg.Display.Width, cfg.Display.Height)

	// Layer-shell: top layer, no reserved space, no keyboard focus.
	// With no edge anchors the compositor centers the surface on the
	// primary output.
	layershell.InitForWindow(w.window)
	layershell.SetLayer(w.window, layershell.LayerShellLayerTop)
	layershell.SetExclusiveZone(w.window, 0)
	layershell.SetKeyboardMode(w.window, layershell.LayerShellKeyboardModeNone)
	layershell.SetNamespace(w.window, "locklight-indicator")

	w.box = gtk.NewBox(gtk.OrientationVertical, 0)
	w.box.AddCSSClass("indicator")
	w.box.AddCSSClass(theme.ColorSchemeClass(cfg.Theme.ColorScheme))

	w.label = gtk.NewLabel("")
	w.label.AddCSSClass("indicator-label")
	w.label.SetHExpand(true)
	w.label.SetVExpand(true)
	w.label.SetJustify(gtk.JustifyCenter)
	w.box.Append(w.label)

	w.window.SetChild(w.box)

	// Created hidden; the window still keeps the GTK application alive.
	w.window.SetVisible(false)

	return w
}

// Show updates the label and style and presents the window.
func (w *Window) Show(text string, style indicator.Style) {
	w.label.SetText(text)

	for _, class := range styleClasses {
		w.box.RemoveCSSClass(class)
	}
	w.box.AddCSSClass(style.String())

	w.window.Present()
}

// Hide makes the window invisible without destroying it.
func (w *Window) Hide() {
	w.window.SetVisible(false)
}

// Close destroys the window, releasing the surface.
func (w *Window) Close() {
	w.window.Close()
}
