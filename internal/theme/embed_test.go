package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedTheme(t *testing.T) {
	css, found := GetEmbeddedTheme("default")
	require.True(t, found)
	assert.Contains(t, css, ".indicator")
	assert.Contains(t, css, ".active")
	assert.Contains(t, css, ".inactive")
	assert.Contains(t, css, ".notice")

	_, found = GetEmbeddedTheme("nope")
	assert.False(t, found)
}

func TestListEmbeddedThemes(t *testing.T) {
	themes := ListEmbeddedThemes()
	assert.Contains(t, themes, "default")
	assert.Contains(t, themes, "minimal")
}

func TestIsEmbeddedTheme(t *testing.T) {
	assert.True(t, IsEmbeddedTheme("default"))
	assert.True(t, IsEmbeddedTheme("minimal"))
	assert.False(t, IsEmbeddedTheme("custom-user-theme"))
}
