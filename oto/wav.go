package oto

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nbmusic/nbm"
)

// Format tells how rendered audio is stored in a file.
type Format struct {
	PCM16 bool // 16-bit signed samples instead of 32-bit floats
	Raw   bool // no .wav header
}

// Ext returns the file extension of the format.
func (f Format) Ext() string {
	if f.Raw {
		return ".raw"
	}
	return ".wav"
}

// RenderFile renders the project like Render and encodes the result in
// format f.
func (s *Sampler) RenderFile(project nbm.Project, ticksPerSecond float64, f Format) ([]byte, error) {
	buffer, err := s.Render(project, ticksPerSecond)
	if err != nil {
		return nil, err
	}
	b, err := Encode(buffer, f)
	if err != nil {
		return nil, fmt.Errorf("could not encode %s file: %w", f.Ext(), err)
	}
	return b, nil
}

// Encode stores an interleaved stereo buffer at SampleRate in format f.
func Encode(buffer []float32, f Format) ([]byte, error) {
	width := 4
	if f.PCM16 {
		width = 2
	}
	size := width * len(buffer)
	if uint64(size) > math.MaxUint32-64 {
		return nil, fmt.Errorf("%d samples do not fit in a .wav file", len(buffer))
	}
	dst := make([]byte, 0, 58+size)
	if !f.Raw {
		dst = appendWavHeader(dst, len(buffer), f.PCM16)
	}
	le := binary.LittleEndian
	for _, v := range buffer {
		if f.PCM16 {
			dst = le.AppendUint16(dst, uint16(int16(min(max(v*math.MaxInt16, math.MinInt16), math.MaxInt16))))
		} else {
			dst = le.AppendUint32(dst, math.Float32bits(v))
		}
	}
	return dst, nil
}

// appendWavHeader appends the RIFF header of a stereo file holding samples
// values, either 16-bit PCM or 32-bit IEEE float. Float files carry the
// extended fmt chunk and a fact chunk.
func appendWavHeader(dst []byte, samples int, pcm16 bool) []byte {
	format, bits, fmtSize, extra := uint16(3), 32, 18, 12 // IEEE float with a fact chunk
	if pcm16 {
		format, bits, fmtSize, extra = 1, 16, 16, 0
	}
	width := bits / 8
	dataSize := samples * width
	le := binary.LittleEndian
	dst = append(dst, "RIFF"...)
	dst = le.AppendUint32(dst, uint32(4+8+fmtSize+extra+8+dataSize))
	dst = append(dst, "WAVEfmt "...)
	dst = le.AppendUint32(dst, uint32(fmtSize))
	dst = le.AppendUint16(dst, format)
	dst = le.AppendUint16(dst, channelCount)
	dst = le.AppendUint32(dst, SampleRate)
	dst = le.AppendUint32(dst, uint32(SampleRate*channelCount*width))
	dst = le.AppendUint16(dst, uint16(channelCount*width))
	dst = le.AppendUint16(dst, uint16(bits))
	if !pcm16 {
		dst = le.AppendUint16(dst, 0)
		dst = append(dst, "fact"...)
		dst = le.AppendUint32(dst, 4)
		dst = le.AppendUint32(dst, uint32(samples/channelCount))
	}
	dst = append(dst, "data"...)
	return le.AppendUint32(dst, uint32(dataSize))
}
