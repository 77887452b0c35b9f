// Package config loads and saves the core's JSON configuration file,
// scoped to what the emulator core itself cares about: the audio sample
// rate, the frame sequencer's default power-up mode, and whether CPU
// tracing starts enabled. Window/video/input settings belong to the
// out-of-scope renderer and have no home here.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the core's tunable settings.
type Config struct {
	Audio     AudioConfig     `json:"audio"`
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`

	configPath string
	loaded     bool
}

// AudioConfig holds the audio settings stored in the config file. Nothing
// in this module reads them: internal/audio opens its context at its own
// fixed 44100 Hz rate and does not apply Volume.
type AudioConfig struct {
	SampleRate int     `json:"sample_rate"`
	Volume     float32 `json:"volume"`
}

// EmulationConfig controls core behavior that has no single correct
// default on real hardware.
type EmulationConfig struct {
	// FrameSequencerFiveStep selects the APU's power-up frame-counter mode;
	// real NES hardware resets to four-step.
	FrameSequencerFiveStep bool `json:"frame_sequencer_five_step"`
}

// DebugConfig controls development-time instrumentation.
type DebugConfig struct {
	CPUTracing bool `json:"cpu_tracing"`
}

// New returns a Config populated with the core's power-up defaults.
func New() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.8,
		},
		Emulation: EmulationConfig{
			FrameSequencerFiveStep: false,
		},
		Debug: DebugConfig{
			CPUTracing: false,
		},
	}
}

// Load reads path as JSON into a new Config. If path does not exist, a
// default Config is written there and returned, so a first run leaves a
// file the user can edit.
func Load(path string) (*Config, error) {
	c := New()
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	c.validate()
	c.loaded = true
	return c, nil
}

// Save writes the config to its current path as indented JSON.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("config: no path set")
	}
	if dir := filepath.Dir(c.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: creating directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	return os.WriteFile(c.configPath, data, 0644)
}

// validate clamps obviously invalid values to their defaults rather than
// failing the whole load over one bad field.
func (c *Config) validate() {
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = 0.8
	}
}

// IsLoaded reports whether the config was read from an existing file
// rather than freshly defaulted.
func (c *Config) IsLoaded() bool { return c.loaded }

// DefaultPath returns the conventional location for the core's config
// file.
func DefaultPath() string {
	return "./config/nescore.json"
}
