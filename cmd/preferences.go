package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

type (
	// Preferences of the nbm binary. Output is where the notes are played:
	// "oto" for the sampled instruments on the default audio device, "midi"
	// for a MIDI output port or "none".
	Preferences struct {
		TicksPerSecond float64 `yaml:"ticks_per_second"`
		FrameRate      int     `yaml:"frame_rate"`
		Output         string  `yaml:"output"`
		SoundsDir      string  `yaml:"sounds_dir"`
		MIDIOutput     string  `yaml:"midi_output"`
		NoteLengthMs   int     `yaml:"note_length_ms"`
		Gain           float32 `yaml:"gain"`
		MaxVoices      int     `yaml:"max_voices"`
	}
)

const (
	OutputOto  = "oto"
	OutputMIDI = "midi"
	OutputNone = "none"
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ConfigPath returns the path of a file in the user configuration directory of
// nbm.
func ConfigPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "nbm", filename), nil
}

// ReadPreferences overlays the preferences in the yml file at path on top of
// p. A missing file is not an error.
func (p *Preferences) ReadPreferences(path string) error {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(bytes, p); err != nil {
		return fmt.Errorf("invalid preferences in %s: %w", path, err)
	}
	return p.Validate()
}

// Validate checks that the preferences make sense.
func (p *Preferences) Validate() error {
	switch {
	case p.TicksPerSecond <= 0:
		return fmt.Errorf("ticks_per_second must be positive, got %v", p.TicksPerSecond)
	case p.FrameRate <= 0:
		return fmt.Errorf("frame_rate must be positive, got %v", p.FrameRate)
	case p.NoteLengthMs <= 0:
		return fmt.Errorf("note_length_ms must be positive, got %v", p.NoteLengthMs)
	case p.MaxVoices <= 0:
		return fmt.Errorf("max_voices must be positive, got %v", p.MaxVoices)
	}
	switch p.Output {
	case OutputOto, OutputMIDI, OutputNone:
		return nil
	}
	return fmt.Errorf("unknown output %q, expected %s, %s or %s", p.Output, OutputOto, OutputMIDI, OutputNone)
}

// MakePreferences returns the default preferences, overridden by the user's
// preferences.yml if there is one. The defaults are returned together with
// the error if the user's file is invalid.
func MakePreferences() (Preferences, error) {
	preferences := loadDefaultPreferences()
	path, err := ConfigPath("preferences.yml")
	if err != nil {
		return preferences, nil
	}
	user := preferences
	if err := user.ReadPreferences(path); err != nil {
		return preferences, err
	}
	return user, nil
}

// FrameDuration returns the time between two frames of the playback loop. An
// unset frame rate counts as 60 frames per second.
func (p Preferences) FrameDuration() time.Duration {
	if p.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(p.FrameRate)
}

func (p Preferences) NoteLength() time.Duration {
	return time.Duration(p.NoteLengthMs) * time.Millisecond
}
