package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		audioMinutes float64
		charCount    int
		expectTotal  float64
	}{
		{
			name:         "whisper_charges_input_only",
			model:        "whisper-1",
			audioMinutes: 10,
			charCount:    4000,
			expectTotal:  0.06,
		},
		{
			name:         "mini_transcribe_charges_both_sides",
			model:        "gpt-4o-mini-transcribe",
			audioMinutes: 10,
			charCount:    4000,
			expectTotal:  10*0.003 + 4000*0.25*5.0/1_000_000,
		},
		{
			name:         "zero_usage_is_free",
			model:        "whisper-1",
			audioMinutes: 0,
			charCount:    0,
			expectTotal:  0,
		},
		{
			name:         "unknown_model_falls_back_to_whisper",
			model:        "no-such-model",
			audioMinutes: 10,
			charCount:    4000,
			expectTotal:  0.06,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimateCost(tt.model, tt.audioMinutes, tt.charCount)
			assert.InDelta(t, tt.expectTotal, est.Total, 1e-9)
			assert.InDelta(t, est.InputCost+est.OutputCost, est.Total, 1e-9)
			assert.Equal(t, tt.charCount, est.CharCount)
		})
	}
}

// Total must be non-decreasing in both audio minutes and character count.
func TestEstimateCostMonotonicity(t *testing.T) {
	for _, model := range Models() {
		prev := 0.0
		for minutes := 0.0; minutes <= 30; minutes += 1.5 {
			est := EstimateCost(model, minutes, 1000)
			assert.GreaterOrEqual(t, est.Total, prev, "model %s minutes %v", model, minutes)
			prev = est.Total
		}

		prev = 0.0
		for chars := 0; chars <= 100_000; chars += 5000 {
			est := EstimateCost(model, 5, chars)
			assert.GreaterOrEqual(t, est.Total, prev, "model %s chars %d", model, chars)
			prev = est.Total
		}
	}
}

func TestAudioMinutesFromBytes(t *testing.T) {
	// One minute of mono PCM-16 at 48 kHz.
	assert.InDelta(t, 1.0, AudioMinutesFromBytes(48000*2*60, 48000), 1e-9)
	assert.Equal(t, 0.0, AudioMinutesFromBytes(0, 48000))
	assert.Equal(t, 0.0, AudioMinutesFromBytes(-10, 48000))
	assert.Equal(t, 0.0, AudioMinutesFromBytes(100, 0))
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, "Whisper-1", ProfileFor("whisper-1").Label)
	assert.Equal(t, "Whisper-1", ProfileFor("unknown").Label)
	assert.Equal(t, "GPT-4o Mini-Transcribe", ProfileFor("gpt-4o-mini-transcribe").Label)
}
