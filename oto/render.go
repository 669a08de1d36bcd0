package oto

import (
	"fmt"
	"math"

	"github.com/nbmusic/nbm"
	"github.com/viterin/vek/vek32"
)

// maxRenderLength limits the rendered audio to one hour.
const maxRenderLength = 3600 * SampleRate

// Render mixes the whole project offline into an interleaved stereo buffer at
// SampleRate, as if it were played at ticksPerSecond from tick 0. Every note
// sounds until its sample ends, so the buffer may extend past the last tick.
func (s *Sampler) Render(project nbm.Project, ticksPerSecond float64) ([]float32, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render: %w", err)
	}
	if ticksPerSecond <= 0 || math.IsNaN(ticksPerSecond) || math.IsInf(ticksPerSecond, 0) {
		return nil, fmt.Errorf("cannot render: invalid tick rate %v", ticksPerSecond)
	}
	framesPerTick := SampleRate / ticksPerSecond
	var mono []float32
	for _, layer := range project.Layers {
		sample := s.samples[layer.Instrument]
		if len(sample) == 0 {
			continue
		}
		for _, n := range layer.Notes {
			voice := Resample(sample, nbm.PlaybackRate(n.Pitch))
			start := int(math.Round(float64(n.Time) * framesPerTick))
			end := start + len(voice)
			if end > maxRenderLength {
				return nil, fmt.Errorf("cannot render: the project is longer than %d frames", maxRenderLength)
			}
			if end > len(mono) {
				mono = append(mono, make([]float32, end-len(mono))...)
			}
			vek32.Add_Inplace(mono[start:end], voice)
		}
	}
	vek32.MulNumber_Inplace(mono, s.gain)
	out := make([]float32, len(mono)*channelCount)
	for i, v := range mono {
		out[2*i] = v
		out[2*i+1] = v
	}
	return out, nil
}
