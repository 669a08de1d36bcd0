package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nbmusic/nbm/cmd"
)

func TestDefaultPreferences(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	p, err := cmd.MakePreferences()
	if err != nil {
		t.Fatalf("MakePreferences failed: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("default preferences are invalid: %v", err)
	}
	if p.TicksPerSecond != 10 || p.Output != cmd.OutputOto {
		t.Errorf("unexpected defaults %+v", p)
	}
	if p.FrameDuration() <= 0 || p.NoteLength() != 250*time.Millisecond {
		t.Errorf("unexpected durations %v, %v", p.FrameDuration(), p.NoteLength())
	}
}

func TestReadPreferences(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		yml     string
		wantErr bool
		check   func(cmd.Preferences) bool
	}{
		{"Override", "ticks_per_second: 4\noutput: midi\nmidi_output: Microsoft\n", false,
			func(p cmd.Preferences) bool {
				return p.TicksPerSecond == 4 && p.Output == cmd.OutputMIDI && p.MIDIOutput == "Microsoft" && p.FrameRate == 60
			}},
		{"UnknownField", "tempo: 120\n", true, nil},
		{"UnknownOutput", "output: speaker\n", true, nil},
		{"ZeroTickRate", "ticks_per_second: 0\n", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := cmd.MakePreferences()
			if err != nil {
				t.Skipf("user preferences are invalid: %v", err)
			}
			path := filepath.Join(dir, tt.name+".yml")
			if err := os.WriteFile(path, []byte(tt.yml), 0644); err != nil {
				t.Fatal(err)
			}
			err = base.ReadPreferences(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.check != nil && !tt.check(base) {
				t.Errorf("unexpected preferences %+v", base)
			}
		})
	}
}

func TestReadMissingPreferences(t *testing.T) {
	var p cmd.Preferences
	if err := p.ReadPreferences(filepath.Join(t.TempDir(), "nothing.yml")); err != nil {
		t.Fatalf("a missing file should not be an error, got %v", err)
	}
}
