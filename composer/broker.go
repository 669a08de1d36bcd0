package composer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/nbmusic/nbm"
)

type (
	// Broker carries the note triggers from the model to the audio goroutine.
	// The model must never wait for the audio, so Trigger drops the note when
	// the channel is full; Dropped counts how many times that happened.
	Broker struct {
		ToAudio chan NoteEvent

		dropped atomic.Int64
	}

	// NoteEvent is a note trigger travelling through the Broker.
	NoteEvent struct {
		Instrument int
		Pitch      uint8
	}
)

const brokerCapacity = 1024

func NewBroker() *Broker {
	return &Broker{ToAudio: make(chan NoteEvent, brokerCapacity)}
}

// Trigger implements nbm.NoteTrigger. It never blocks.
func (b *Broker) Trigger(instrument int, pitch uint8) {
	if !TrySend(b.ToAudio, NoteEvent{Instrument: instrument, Pitch: pitch}) {
		b.dropped.Add(1)
	}
}

// Dropped returns the number of note triggers dropped because the audio
// goroutine did not keep up.
func (b *Broker) Dropped() int64 { return b.dropped.Load() }

// Run hands the note triggers to sink until ctx is done. It is meant to be run
// in its own goroutine, so that a slow sink delays only the audio.
func (b *Broker) Run(ctx context.Context, sink nbm.NoteTrigger) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-b.ToAudio:
			sink.Trigger(e.Instrument, e.Pitch)
		}
	}
}

// TrySend sends v on c unless c is full. It never blocks and reports whether v
// was sent.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
		return true
	default:
		return false
	}
}

// TimeoutReceive waits at most t for a value from c. ok is false on timeout
// and when c is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
