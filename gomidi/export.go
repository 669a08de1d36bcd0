package gomidi

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/nbmusic/nbm"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// Resolution is the number of MIDI ticks per quarter note in the
	// exported files.
	Resolution = 960
	// TicksPerBeat is the number of project ticks per quarter note: a
	// project tick is exported as a sixteenth note.
	TicksPerBeat = 4
	midiPerTick  = Resolution / TicksPerBeat
	// maxDelta is the largest delta time a variable-length quantity holds.
	maxDelta = 0x0FFFFFFF
)

type noteEvent struct {
	at  uint64
	on  bool
	key uint8
}

// BPM returns the tempo of the exported file for a playback rate of
// ticksPerSecond.
func BPM(ticksPerSecond float64) float64 {
	return ticksPerSecond * 60 / TicksPerBeat
}

// Export writes the project as a Standard MIDI File: a tempo track followed
// by one track per layer, named after the layer and playing on the channel
// of its instrument. Every note lasts one project tick.
func Export(w io.Writer, project nbm.Project, ticksPerSecond float64) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("cannot export: %w", err)
	}
	if ticksPerSecond <= 0 {
		return fmt.Errorf("cannot export: invalid tick rate %v", ticksPerSecond)
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(BPM(ticksPerSecond)))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}
	for i, layer := range project.Layers {
		track, err := layerTrack(layer)
		if err != nil {
			return fmt.Errorf("cannot export layer %d: %w", i, err)
		}
		if err := s.Add(track); err != nil {
			return fmt.Errorf("error adding track for layer %d: %w", i, err)
		}
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}

func layerTrack(layer nbm.Layer) (smf.Track, error) {
	ch, _ := Channel(layer.Instrument)
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(layer.Name))
	if ch != PercussionChannel {
		prg, _ := Program(layer.Instrument)
		track.Add(0, midi.ProgramChange(ch, prg))
	}
	events := make([]noteEvent, 0, len(layer.Notes)*2)
	for _, n := range layer.Notes {
		start := uint64(n.Time) * midiPerTick
		events = append(events,
			noteEvent{at: start, on: true, key: n.Pitch},
			noteEvent{at: start + midiPerTick, on: false, key: n.Pitch})
	}
	// note offs go before note ons at the same time, so that a note ending
	// when another one of the same key starts does not cut the latter
	slices.SortStableFunc(events, func(a, b noteEvent) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		switch {
		case a.on == b.on:
			return 0
		case a.on:
			return 1
		}
		return -1
	})
	var last uint64
	for _, e := range events {
		if e.at-last > maxDelta {
			return nil, fmt.Errorf("gap of %d ticks before tick %d is too long", (e.at-last)/midiPerTick, e.at/midiPerTick)
		}
		delta := uint32(e.at - last)
		last = e.at
		if e.on {
			track.Add(delta, midi.NoteOn(ch, e.key, defaultVelocity))
		} else {
			track.Add(delta, midi.NoteOff(ch, e.key))
		}
	}
	track.Close(0)
	return track, nil
}
