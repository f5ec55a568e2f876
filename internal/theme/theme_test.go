package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.css")
	require.NoError(t, os.WriteFile(path, []byte(".indicator { padding: 4px; }"), 0644))

	theme, err := NewTheme("custom", path)
	require.NoError(t, err)

	assert.Equal(t, "custom", theme.Name)
	assert.Equal(t, path, theme.Path)
	assert.Contains(t, theme.CSS, "padding: 4px")
	assert.False(t, theme.IsEmbedded())
	assert.False(t, theme.IsDefault)
}

func TestNewTheme_MissingFile(t *testing.T) {
	_, err := NewTheme("missing", "/nonexistent/theme.css")
	assert.Error(t, err)
}

func TestNewEmbeddedTheme(t *testing.T) {
	theme, found := NewEmbeddedTheme(DefaultThemeName)
	require.True(t, found)

	assert.True(t, theme.IsDefault)
	assert.True(t, theme.IsEmbedded())
	assert.NotEmpty(t, theme.CSS)

	_, found = NewEmbeddedTheme("does-not-exist")
	assert.False(t, found)
}

func TestThemeReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.css")
	require.NoError(t, os.WriteFile(path, []byte(".indicator { padding: 4px; }"), 0644))

	theme, err := NewTheme("custom", path)
	require.NoError(t, err)

	// Unchanged file: no reload.
	changed, err := theme.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	// Rewrite with new content and a newer mtime.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.WriteFile(path, []byte(".indicator { padding: 8px; }"), 0644))
	require.NoError(t, os.Chtimes(path, future, future))

	changed, err = theme.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, theme.CSS, "padding: 8px")
}

func TestEmbeddedThemeReloadIsNoOp(t *testing.T) {
	theme, found := NewEmbeddedTheme(DefaultThemeName)
	require.True(t, found)

	changed, err := theme.Reload()
	require.NoError(t, err)
	assert.False(t, changed)
}
