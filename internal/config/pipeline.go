package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"live-whisper/internal/app/audio"
)

// Pipeline holds the tunables of the capture and transcription pipeline.
type Pipeline struct {
	// SampleRate is the nominal capture rate. The WAV header uses the rate
	// detected from the first frame; this value seeds stats before any
	// frame arrives.
	SampleRate int `yaml:"sample_rate" validate:"gt=0"`

	// Gain boosts quiet capture sources. 1.0 leaves audio untouched.
	Gain float64 `yaml:"gain" validate:"gte=0.1,lte=8"`

	// ChunkSeconds is the accumulation window between transcription calls.
	ChunkSeconds float64 `yaml:"chunk_seconds" validate:"gte=1,lte=5"`

	// PollIntervalMS is how often the transcription worker checks the
	// elapsed time. Must be well below the chunk duration.
	PollIntervalMS int `yaml:"poll_interval_ms" validate:"gte=50,lte=2000"`

	// QueueCapacity bounds the ingest queue. When full, frames are dropped
	// rather than blocking the capture callback.
	QueueCapacity int `yaml:"queue_capacity" validate:"gte=8,lte=4096"`

	// JoinTimeoutSec bounds how long Stop waits for each worker.
	JoinTimeoutSec int `yaml:"join_timeout_sec" validate:"gte=1,lte=30"`

	VAD audio.VADConfig `yaml:"vad"`

	// Language is the transcription language hint (ISO 639-1).
	Language string `yaml:"language" validate:"required,len=2"`

	// Model selects the transcription model and its cost profile.
	Model string `yaml:"model" validate:"required"`

	// ResourceDir is where WAV recordings and transcripts are written.
	ResourceDir string `yaml:"resource_dir" validate:"required"`
}

// DefaultPipeline returns the production defaults.
func DefaultPipeline() Pipeline {
	return Pipeline{
		SampleRate:     48000,
		Gain:           2.0,
		ChunkSeconds:   3.0,
		PollIntervalMS: 500,
		QueueCapacity:  128,
		JoinTimeoutSec: 3,
		VAD:            audio.DefaultVADConfig(),
		Language:       "zh",
		Model:          "whisper-1",
		ResourceDir:    "resource",
	}
}

// LoadPipeline reads a yaml config file, layering it over the defaults.
func LoadPipeline(path string) (Pipeline, error) {
	cfg := DefaultPipeline()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks all bounds, including the nested VAD gates.
func (p Pipeline) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}

	if time.Duration(p.PollIntervalMS)*time.Millisecond >= p.ChunkDuration() {
		return fmt.Errorf("poll interval %dms must be below chunk duration %.1fs",
			p.PollIntervalMS, p.ChunkSeconds)
	}

	return nil
}

// ChunkDuration returns the accumulation window as a duration.
func (p Pipeline) ChunkDuration() time.Duration {
	return time.Duration(p.ChunkSeconds * float64(time.Second))
}

// PollInterval returns the transcription worker poll cadence.
func (p Pipeline) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalMS) * time.Millisecond
}

// JoinTimeout returns the per-worker shutdown wait bound.
func (p Pipeline) JoinTimeout() time.Duration {
	return time.Duration(p.JoinTimeoutSec) * time.Second
}
