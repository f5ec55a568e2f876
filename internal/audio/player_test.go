package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSound_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chime.flac")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0644))

	p := NewPlayer(nil)
	_, err := p.loadSound(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestLoadSound_MissingFile(t *testing.T) {
	p := NewPlayer(nil)
	_, err := p.loadSound("/nonexistent/chime.wav")
	assert.Error(t, err)
}

func TestSetVolumeClamps(t *testing.T) {
	p := NewPlayer(nil)

	p.SetVolume(1.5)
	assert.Equal(t, 1.0, p.volume)

	p.SetVolume(-0.2)
	assert.Equal(t, 0.0, p.volume)

	p.SetVolume(0.5)
	assert.Equal(t, 0.5, p.volume)
}

func TestVolumeToDecibels(t *testing.T) {
	assert.Equal(t, 0.0, volumeToDecibels(1.0))
	assert.Equal(t, -1.0, volumeToDecibels(0.5))
	assert.Equal(t, 0.0, volumeToDecibels(0))
}

func TestPlayEmptyPathIsNoOp(t *testing.T) {
	p := NewPlayer(nil)
	assert.NoError(t, p.Play(""))
	assert.NoError(t, p.Preload(""))
}
