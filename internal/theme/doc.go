// Package theme provides CSS theming for the locklight overlay.
// It resolves themes from the user's themes directory with embedded
// fallbacks, applies them via a GTK CSS provider, and hot-reloads
// user theme files on change.
package theme
