package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMS(t *testing.T) {
	tests := []struct {
		name     string
		samples  []int16
		expected float64
	}{
		{
			name:     "empty_slice_returns_zero",
			samples:  nil,
			expected: 0,
		},
		{
			name:     "all_zero_samples",
			samples:  make([]int16, 480),
			expected: 0,
		},
		{
			name:     "constant_amplitude",
			samples:  []int16{500, -500, 500, -500},
			expected: 500,
		},
		{
			name:     "mixed_amplitudes",
			samples:  []int16{100, -200, 300, -400},
			expected: math.Sqrt((100*100 + 200*200 + 300*300 + 400*400) / 4.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RMS(tt.samples), 0.01)
		})
	}
}

func TestApplyGain(t *testing.T) {
	tests := []struct {
		name     string
		samples  []int16
		gain     float64
		expected []int16
	}{
		{
			name:     "unity_gain_is_identity",
			samples:  []int16{1, -2, 3},
			gain:     1.0,
			expected: []int16{1, -2, 3},
		},
		{
			name:     "double_volume",
			samples:  []int16{100, -200},
			gain:     2.0,
			expected: []int16{200, -400},
		},
		{
			name:     "clips_positive_overflow",
			samples:  []int16{30000},
			gain:     2.0,
			expected: []int16{math.MaxInt16},
		},
		{
			name:     "clips_negative_overflow",
			samples:  []int16{-30000},
			gain:     2.0,
			expected: []int16{math.MinInt16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyGain(tt.samples, tt.gain))
		})
	}
}

func TestApplyGainNeverAliasesInput(t *testing.T) {
	// Capture transports may reuse frame memory, so even unity gain must
	// hand back a private copy.
	for _, gain := range []float64{1.0, 2.0} {
		in := []int16{100, -200, 300}
		out := ApplyGain(in, gain)
		in[0], in[1], in[2] = 0, 0, 0
		assert.Equal(t, int16(-200*gain), out[1], "gain %v output mutated through the input slice", gain)
	}
}

func TestSampleByteRoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, math.MaxInt16, math.MinInt16, 12345, -12345}

	data := SamplesToBytes(samples)
	assert.Len(t, data, len(samples)*SampleWidth)

	decoded := BytesToSamples(data)
	assert.Equal(t, samples, decoded)
}

func TestBytesToSamplesIgnoresTrailingOddByte(t *testing.T) {
	data := append(SamplesToBytes([]int16{42}), 0x7f)
	assert.Equal(t, []int16{42}, BytesToSamples(data))
}
