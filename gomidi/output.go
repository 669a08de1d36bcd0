package gomidi

import (
	"fmt"
	"sync"
	"time"

	"github.com/nbmusic/nbm"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Output plays the triggered notes on a MIDI output port, e.g. a hardware or
// software synthesizer. Each note is switched off after a fixed note length.
type Output struct {
	out        drivers.Out
	noteLength time.Duration
	velocity   uint8

	mu  sync.Mutex
	err error
}

const (
	DefaultNoteLength = 250 * time.Millisecond
	defaultVelocity   = 100
	allNotesOff       = 123
)

// NewOutput opens out if necessary and selects the General MIDI program of
// every instrument on its channel.
func NewOutput(out drivers.Out, noteLength time.Duration) (*Output, error) {
	if !out.IsOpen() {
		if err := out.Open(); err != nil {
			return nil, fmt.Errorf("opening MIDI output failed: %w", err)
		}
	}
	o := &Output{out: out, noteLength: noteLength, velocity: defaultVelocity}
	for i := range nbm.NumInstruments {
		ch, _ := Channel(i)
		if ch == PercussionChannel {
			continue
		}
		prg, _ := Program(i)
		o.send(midi.ProgramChange(ch, prg))
	}
	if err := o.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

// Trigger implements nbm.NoteTrigger. The note off is sent later from a timer
// goroutine, so Trigger returns after sending the note on.
func (o *Output) Trigger(instrument int, pitch uint8) {
	ch, ok := Channel(instrument)
	if !ok || pitch > nbm.MaxPitch {
		return
	}
	o.send(midi.NoteOn(ch, pitch, o.velocity))
	time.AfterFunc(o.noteLength, func() {
		o.send(midi.NoteOff(ch, pitch))
	})
}

// Err returns the first error that happened when sending to the port.
func (o *Output) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Close silences all the channels and closes the port.
func (o *Output) Close() error {
	for ch := range uint8(16) {
		o.send(midi.ControlChange(ch, allNotesOff, 0))
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.out.Close(); err != nil {
		return fmt.Errorf("closing MIDI output failed: %w", err)
	}
	return nil
}

func (o *Output) send(msg midi.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.out.Send(msg.Bytes()); err != nil && o.err == nil {
		o.err = fmt.Errorf("sending %v failed: %w", msg, err)
	}
}
