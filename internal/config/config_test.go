package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.json")

	c, err := Load(path)
	require.NoError(t, err)
	require.False(t, c.IsLoaded())
	require.Equal(t, 44100, c.Audio.SampleRate)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, reloaded.IsLoaded())
	require.Equal(t, c.Audio.SampleRate, reloaded.Audio.SampleRate)
}

func TestLoadClampsInvalidSampleRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.json")
	c := New()
	c.configPath = path
	c.Audio.SampleRate = -1
	require.NoError(t, c.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 44100, loaded.Audio.SampleRate)
}

func TestSaveRoundTripsEmulationSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.json")
	c := New()
	c.configPath = path
	c.Emulation.FrameSequencerFiveStep = true
	c.Debug.CPUTracing = true
	require.NoError(t, c.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Emulation.FrameSequencerFiveStep)
	require.True(t, loaded.Debug.CPUTracing)
}
