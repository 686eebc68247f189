package audio

import (
	"encoding/binary"
	"math"
)

// SampleWidth is the byte size of one mono PCM-16 sample.
const SampleWidth = 2

// RMS computes the root mean square of PCM-16 samples.
// Returns 0 for an empty slice.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		f := float64(s)
		sum += f * f
	}

	return math.Sqrt(sum / float64(len(samples)))
}

// ApplyGain multiplies samples by gain, clipping to the int16 range. The
// result is always a fresh slice: callers buffer it past the callback, and
// capture transports are free to reuse frame memory.
func ApplyGain(samples []int16, gain float64) []int16 {
	out := make([]int16, len(samples))
	if gain == 1.0 {
		copy(out, samples)
		return out
	}

	for i, s := range samples {
		v := float64(s) * gain
		switch {
		case v > math.MaxInt16:
			out[i] = math.MaxInt16
		case v < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}

	return out
}

// SamplesToBytes serializes PCM-16 samples as little-endian bytes.
func SamplesToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*SampleWidth)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*SampleWidth:], uint16(s))
	}
	return buf
}

// BytesToSamples deserializes little-endian PCM-16 bytes. A trailing odd
// byte is ignored.
func BytesToSamples(data []byte) []int16 {
	n := len(data) / SampleWidth
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*SampleWidth:]))
	}
	return samples
}
