package audio

// VADConfig holds the voice-activity gates applied to a chunk before it is
// submitted for transcription.
type VADConfig struct {
	// RMSThreshold is the minimum aggregate RMS for a chunk to count as speech.
	RMSThreshold float64 `yaml:"rms_threshold" validate:"gte=50,lte=1000"`
	// MinDensity is the minimum fraction of samples that must exceed
	// AmplitudeGate. RMS alone passes low-level hum; speech has genuinely
	// loud individual samples.
	MinDensity float64 `yaml:"min_density" validate:"gte=0,lte=1"`
	// AmplitudeGate is the absolute amplitude a sample must reach to count
	// toward MinDensity.
	AmplitudeGate int `yaml:"amplitude_gate" validate:"gte=0,lte=32767"`
}

// DefaultVADConfig mirrors the thresholds tuned for 48 kHz mono speech.
func DefaultVADConfig() VADConfig {
	return VADConfig{
		RMSThreshold:  300.0,
		MinDensity:    0.12,
		AmplitudeGate: 1100,
	}
}

// IsVoiced reports whether a chunk contains speech worth transcribing.
// Both gates must pass: aggregate RMS and loud-sample density.
func IsVoiced(samples []int16, cfg VADConfig) bool {
	if len(samples) == 0 {
		return false
	}

	if RMS(samples) < cfg.RMSThreshold {
		return false
	}

	loud := 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v >= cfg.AmplitudeGate {
			loud++
		}
	}

	density := float64(loud) / float64(len(samples))
	return density >= cfg.MinDensity
}
