package oto

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nbmusic/nbm"
	"github.com/viterin/vek/vek32"
)

type (
	// Sampler plays every trigger by resampling the recorded sample of the
	// instrument to the pitch of the note. Each note gets its own player and
	// goroutine, so Trigger returns immediately and notes overlap freely.
	Sampler struct {
		samples   [nbm.NumInstruments][]float32
		gain      float32
		maxVoices int32
		voices    atomic.Int32
		dropped   atomic.Int64
		newPlayer func(io.Reader) Player
		wg        sync.WaitGroup
	}

	// Player plays the audio read from an io.Reader. *oto.Player implements
	// it.
	Player interface {
		Play()
		IsPlaying() bool
		Close() error
	}

	// PlayerFactory creates the players for the sampler, e.g. a *Context.
	PlayerFactory interface {
		NewPlayer(r io.Reader) Player
	}
)

// SampleExtension is the extension of the sample files: raw mono 32-bit float
// little-endian samples at SampleRate, recorded at nbm.ReferencePitch.
const SampleExtension = ".raw"

const (
	defaultGain      = 0.5
	defaultMaxVoices = 32
	pollInterval     = 10 * time.Millisecond
)

// NewSampler returns a sampler with no samples loaded. A sampler with nil
// players stays silent when triggered and is only good for Render.
func NewSampler(players PlayerFactory) *Sampler {
	s := &Sampler{gain: defaultGain, maxVoices: defaultMaxVoices}
	if players != nil {
		s.newPlayer = players.NewPlayer
	}
	return s
}

// SetGain sets the volume of the notes triggered after the call.
func (s *Sampler) SetGain(gain float32) { s.gain = gain }

// SetMaxVoices limits how many notes can sound at the same time; further
// triggers are dropped until a note finishes.
func (s *Sampler) SetMaxVoices(n int) { s.maxVoices = int32(max(n, 1)) }

// SetSample sets the recorded sample of an instrument.
func (s *Sampler) SetSample(instrument int, sample []float32) error {
	if instrument < 0 || instrument >= nbm.NumInstruments {
		return fmt.Errorf("%w: %d", nbm.ErrInvalidInstrument, instrument)
	}
	s.samples[instrument] = sample
	return nil
}

// LoadSamples reads the sample of every instrument from fsys, from the file
// named after the instrument, e.g. "harp.raw". Missing or unreadable files
// are reported together in the returned error; the instruments that could
// be loaded are usable either way.
func (s *Sampler) LoadSamples(fsys fs.FS) error {
	var errs []error
	for i, name := range nbm.Instruments {
		b, err := fs.ReadFile(fsys, name+SampleExtension)
		if err != nil {
			errs = append(errs, fmt.Errorf("instrument %s: %w", name, err))
			continue
		}
		s.samples[i] = DecodeFloat32LE(b)
	}
	return errors.Join(errs...)
}

// Trigger implements nbm.NoteTrigger.
func (s *Sampler) Trigger(instrument int, pitch uint8) {
	if s.newPlayer == nil || instrument < 0 || instrument >= nbm.NumInstruments {
		return
	}
	sample := s.samples[instrument]
	if len(sample) == 0 {
		return
	}
	if s.voices.Add(1) > s.maxVoices {
		s.voices.Add(-1)
		s.dropped.Add(1)
		return
	}
	gain := s.gain
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.voices.Add(-1)
		buf := Resample(sample, nbm.PlaybackRate(pitch))
		vek32.MulNumber_Inplace(buf, gain)
		p := s.newPlayer(bytes.NewReader(MonoTo16BitStereoLE(buf, nil)))
		p.Play()
		for p.IsPlaying() {
			time.Sleep(pollInterval)
		}
		p.Close()
	}()
}

// Voices returns the number of notes sounding right now.
func (s *Sampler) Voices() int { return int(s.voices.Load()) }

// Dropped returns the number of triggers dropped because of the voice limit.
func (s *Sampler) Dropped() int64 { return s.dropped.Load() }

// Wait blocks until all the notes have finished.
func (s *Sampler) Wait() { s.wg.Wait() }

// Resample returns src played back rate times faster, using linear
// interpolation between the neighbouring samples. The result is a new slice,
// about len(src)/rate samples long.
func Resample(src []float32, rate float64) []float32 {
	if len(src) == 0 || rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil
	}
	n := max(int(math.Ceil(float64(len(src))/rate)), 1)
	out := make([]float32, n)
	last := len(src) - 1
	for i := range out {
		pos := float64(i) * rate
		idx := min(int(pos), last)
		frac := float32(pos - float64(idx))
		s0 := src[idx]
		s1 := s0
		if idx < last {
			s1 = src[idx+1]
		}
		out[i] = s0 + (s1-s0)*frac
	}
	return out
}
