package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// voicedChunk synthesizes a loud sine wave that passes both VAD gates.
func voicedChunk(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(8000 * math.Sin(2*math.Pi*float64(i)/48.0))
	}
	return samples
}

// humChunk synthesizes broadband low-level noise: enough RMS to pass a
// naive threshold but with no individually loud samples.
func humChunk(n int, amplitude int16) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = amplitude
		} else {
			samples[i] = -amplitude
		}
	}
	return samples
}

func TestIsVoiced(t *testing.T) {
	cfg := DefaultVADConfig()

	tests := []struct {
		name    string
		samples []int16
		cfg     VADConfig
		voiced  bool
	}{
		{
			name:    "empty_chunk_is_silent",
			samples: nil,
			cfg:     cfg,
			voiced:  false,
		},
		{
			name:    "all_zero_chunk_is_silent",
			samples: make([]int16, 4800),
			cfg:     cfg,
			voiced:  false,
		},
		{
			name:    "loud_sine_is_voiced",
			samples: voicedChunk(4800),
			cfg:     cfg,
			voiced:  true,
		},
		{
			name: "hum_passes_rms_but_fails_density",
			// RMS is 600, well above the 300 threshold, yet no sample
			// reaches the 1100 amplitude gate.
			samples: humChunk(4800, 600),
			cfg:     cfg,
			voiced:  false,
		},
		{
			name:    "quiet_speech_fails_rms",
			samples: humChunk(4800, 100),
			cfg:     cfg,
			voiced:  false,
		},
		{
			name:    "zero_density_requirement_reduces_to_rms_gate",
			samples: humChunk(4800, 600),
			cfg:     VADConfig{RMSThreshold: 300, MinDensity: 0, AmplitudeGate: 1100},
			voiced:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.voiced, IsVoiced(tt.samples, tt.cfg))
		})
	}
}

func TestDefaultVADConfig(t *testing.T) {
	cfg := DefaultVADConfig()
	assert.Equal(t, 300.0, cfg.RMSThreshold)
	assert.Equal(t, 0.12, cfg.MinDensity)
	assert.Equal(t, 1100, cfg.AmplitudeGate)
}
