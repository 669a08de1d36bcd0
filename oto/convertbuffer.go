package oto

import (
	"encoding/binary"
	"math"
)

// MonoTo16BitStereoLE converts a mono []float32 buffer to 16-bit
// little-endian stereo frames, appending them to dst. Values outside [-1, 1]
// are clipped.
func MonoTo16BitStereoLE(buff []float32, dst []byte) []byte {
	for _, v := range buff {
		var uv int16
		if v < -1.0 {
			uv = -math.MaxInt16
		} else if v > 1.0 {
			uv = math.MaxInt16
		} else {
			uv = int16(v * math.MaxInt16)
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(uv))
		dst = binary.LittleEndian.AppendUint16(dst, uint16(uv))
	}
	return dst
}

// DecodeFloat32LE decodes raw little-endian 32-bit float samples. A trailing
// partial sample is ignored.
func DecodeFloat32LE(b []byte) []float32 {
	ret := make([]float32, len(b)/4)
	for i := range ret {
		ret[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return ret
}
