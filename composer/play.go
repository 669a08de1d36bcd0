package composer

import (
	"math"
	"time"
)

// Play returns the PlayModel view of the model, containing the transport:
// starting, pausing, stopping, seeking and advancing the playback position,
// and firing the notes as the playback position crosses the ticks.
func (m *Model) Play() *PlayModel { return (*PlayModel)(m) }

type PlayModel Model

// NotStarted is the playback position after Stop. Any negative position means
// that the playback has not begun and no tick is current.
var NotStarted = math.Inf(-1)

const (
	// noTick is the current tick when the position is negative, and the last
	// fired tick when nothing has been fired since the last discontinuity.
	noTick = -1
	// maxTick is one past the latest time a note can have.
	maxTick = math.MaxUint32 + 1
)

// Position returns the playback position in ticks. The fractional part tells
// how far the playback is between two ticks.
func (m *PlayModel) Position() float64 { return m.position }

// Tick returns the current tick, i.e. the integer part of the playback
// position. ok is false if the playback position is negative.
func (m *PlayModel) Tick() (tick int64, ok bool) {
	t := m.currentTick()
	return t, t != noTick
}

// Playing returns a Bool telling whether the playback position advances.
// Setting it is the same as doing Toggle when the value changes.
func (m *PlayModel) Playing() Bool { return MakeBool((*playing)(m)) }

type playing PlayModel

func (m *playing) Value() bool { return m.playing }
func (m *playing) SetValue(val bool) {
	m.playing = val
	if val && m.position < 0 {
		m.position = 0
		m.lastFiredTick = noTick // tick 0 fires on the next Advance or Seek
	}
}

// Toggle returns an Action to switch between playing and paused. If the
// playback has not begun, playing starts from tick 0. Toggle itself fires
// nothing; the notes on tick 0 are fired by the following Advance or Seek.
func (m *PlayModel) Toggle() Action { return MakeAction((*togglePlay)(m)) }

type togglePlay PlayModel

func (m *togglePlay) Do() { (*PlayModel)(m).Playing().Toggle() }

// Stop returns an Action to stop the playback and rewind, so that the next
// Toggle starts from tick 0.
func (m *PlayModel) Stop() Action { return MakeAction((*stopPlay)(m)) }

type stopPlay PlayModel

func (m *stopPlay) Do() {
	m.playing = false
	m.position = NotStarted
}

// TickRate returns a Float controlling how many ticks the playback advances
// per second. It can be changed while playing and only affects the following
// Advance calls.
func (m *PlayModel) TickRate() Float { return MakeFloat((*tickRate)(m)) }

type tickRate PlayModel

func (v *tickRate) Value() float64 { return v.ticksPerSecond }
func (v *tickRate) SetValue(value float64) bool {
	v.ticksPerSecond = value
	return true
}
func (v *tickRate) Range() FloatRange { return FloatRange{0.1, 1000} }

// Advance is called once per frame with the wall time elapsed since the
// previous frame. When playing, the playback position moves forward by
// dt*TickRate ticks. Then, if the current tick differs from the tick that was
// fired last, all notes on the current tick are fired.
//
// Only the tick where the position lands is fired. If a single frame is so
// long that the position skips over ticks, the notes on the skipped ticks do
// not sound.
func (m *PlayModel) Advance(dt time.Duration) {
	if m.playing && dt > 0 {
		m.position += dt.Seconds() * m.ticksPerSecond
	}
	m.fire()
}

// Seek moves the playback position directly, e.g. when the user scrubs with
// the mouse, regardless of whether playing or not. Only the notes on the
// destination tick are fired.
func (m *PlayModel) Seek(position float64) {
	if math.IsNaN(position) {
		return
	}
	m.position = position
	m.fire()
}

func (m *PlayModel) currentTick() int64 {
	if m.position < 0 {
		return noTick
	}
	return int64(min(math.Floor(m.position), maxTick))
}

// fire triggers the notes of every layer on the current tick, unless they
// were already triggered since the position entered this tick.
func (m *PlayModel) fire() {
	tick := m.currentTick()
	if tick == m.lastFiredTick {
		return
	}
	m.lastFiredTick = tick
	if tick == noTick {
		return
	}
	for _, layer := range m.d.Project.Layers {
		for _, note := range layer.Notes {
			if int64(note.Time) == tick {
				m.trigger.Trigger(layer.Instrument, note.Pitch)
			}
		}
	}
}
