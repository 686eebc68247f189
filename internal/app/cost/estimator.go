// Package cost estimates transcription spend from audio duration and
// transcript length. Estimation is pure arithmetic over a static price
// table and can be called at any point of a recording session.
package cost

import "live-whisper/internal/app/audio"

// DefaultModel is used when a recording has no explicit model mapping.
const DefaultModel = "whisper-1"

// ModelCostProfile describes the pricing of one transcription model.
type ModelCostProfile struct {
	Label              string
	InputCostPerMinute float64 // USD per audio minute
	OutputCostPerToken float64 // USD per output token
	TokensPerChar      float64 // Approx chars -> tokens conversion
}

var modelProfiles = map[string]ModelCostProfile{
	"whisper-1": {
		Label:              "Whisper-1",
		InputCostPerMinute: 0.006,
		OutputCostPerToken: 0.0,
		TokensPerChar:      0.25,
	},
	"gpt-4o-mini-transcribe": {
		Label:              "GPT-4o Mini-Transcribe",
		InputCostPerMinute: 0.003,
		OutputCostPerToken: 5.0 / 1_000_000,
		TokensPerChar:      0.25,
	},
}

// ProfileFor returns the cost profile for the model, falling back to the
// default model for unknown names.
func ProfileFor(model string) ModelCostProfile {
	if p, ok := modelProfiles[model]; ok {
		return p
	}
	return modelProfiles[DefaultModel]
}

// Models lists the models with a known cost profile.
func Models() []string {
	names := make([]string, 0, len(modelProfiles))
	for name := range modelProfiles {
		names = append(names, name)
	}
	return names
}

// Estimate is the result of a cost estimation.
type Estimate struct {
	InputCost    float64 `json:"input_cost"`
	OutputCost   float64 `json:"output_cost"`
	Total        float64 `json:"total"`
	AudioMinutes float64 `json:"audio_minutes"`
	CharCount    int     `json:"char_count"`
	OutputTokens float64 `json:"output_tokens"`
}

// EstimateCost converts audio minutes and transcript length into an
// estimated spend for the given model.
func EstimateCost(model string, audioMinutes float64, charCount int) Estimate {
	profile := ProfileFor(model)

	inputCost := audioMinutes * profile.InputCostPerMinute
	outputTokens := float64(charCount) * profile.TokensPerChar
	outputCost := outputTokens * profile.OutputCostPerToken

	return Estimate{
		InputCost:    inputCost,
		OutputCost:   outputCost,
		Total:        inputCost + outputCost,
		AudioMinutes: audioMinutes,
		CharCount:    charCount,
		OutputTokens: outputTokens,
	}
}

// AudioMinutesFromBytes converts a mono PCM-16 byte count into minutes.
func AudioMinutesFromBytes(byteCount int64, sampleRate int) float64 {
	if byteCount <= 0 || sampleRate <= 0 {
		return 0
	}
	frames := float64(byteCount) / float64(audio.SampleWidth)
	return frames / float64(sampleRate) / 60.0
}
