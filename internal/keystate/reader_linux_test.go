//go:build linux

package keystate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeds builds a sysfs-shaped LED tree and points the reader at it.
func fakeLeds(t *testing.T, leds map[string]string) {
	t.Helper()

	dir := t.TempDir()
	for name, brightness := range leds {
		ledDir := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(ledDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(ledDir, "brightness"), []byte(brightness), 0644))
	}

	old := ledsDir
	ledsDir = dir
	t.Cleanup(func() { ledsDir = old })
}

func TestLedReaderReadsBrightness(t *testing.T) {
	fakeLeds(t, map[string]string{
		"input3::capslock":   "1\n",
		"input3::numlock":    "0\n",
		"input3::scrolllock": "0\n",
	})

	r := newPlatformReader()
	require.True(t, r.Supported())

	assert.Equal(t, State{Caps: true}, r.Read())
}

func TestLedReaderMultipleKeyboards(t *testing.T) {
	// Two keyboards; the key is on if any keyboard's LED is lit.
	fakeLeds(t, map[string]string{
		"input3::numlock": "0\n",
		"input7::numlock": "1\n",
	})

	r := newPlatformReader()
	require.True(t, r.Supported())

	assert.Equal(t, State{Num: true}, r.Read())
}

func TestLedReaderIgnoresOtherLeds(t *testing.T) {
	fakeLeds(t, map[string]string{
		"platform::micmute": "1\n",
	})

	r := newPlatformReader()
	assert.False(t, r.Supported())
	assert.Equal(t, State{}, r.Read())
}

func TestLedReaderNoLedsDir(t *testing.T) {
	old := ledsDir
	ledsDir = filepath.Join(t.TempDir(), "missing")
	t.Cleanup(func() { ledsDir = old })

	r := newPlatformReader()
	assert.False(t, r.Supported())
}

func TestLedReaderUnreadableBrightnessIsOff(t *testing.T) {
	fakeLeds(t, map[string]string{
		"input3::capslock": "1\n",
	})

	// Remove the file after construction; the read degrades to off.
	require.NoError(t, os.Remove(filepath.Join(ledsDir, "input3::capslock", "brightness")))

	r := newPlatformReader()
	assert.Equal(t, State{}, r.Read())
}
