package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPipelineIsValid(t *testing.T) {
	cfg := DefaultPipeline()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 3.0, cfg.ChunkSeconds)
	assert.Equal(t, "zh", cfg.Language)
	assert.Equal(t, "whisper-1", cfg.Model)
}

func TestPipelineValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Pipeline)
	}{
		{
			name:   "chunk_below_one_second",
			mutate: func(p *Pipeline) { p.ChunkSeconds = 0.5 },
		},
		{
			name:   "chunk_above_five_seconds",
			mutate: func(p *Pipeline) { p.ChunkSeconds = 6 },
		},
		{
			name:   "vad_rms_below_range",
			mutate: func(p *Pipeline) { p.VAD.RMSThreshold = 10 },
		},
		{
			name:   "vad_rms_above_range",
			mutate: func(p *Pipeline) { p.VAD.RMSThreshold = 2000 },
		},
		{
			name:   "missing_language",
			mutate: func(p *Pipeline) { p.Language = "" },
		},
		{
			name:   "poll_interval_not_below_chunk_duration",
			mutate: func(p *Pipeline) { p.PollIntervalMS = 2000; p.ChunkSeconds = 2 },
		},
		{
			name:   "zero_sample_rate",
			mutate: func(p *Pipeline) { p.SampleRate = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPipeline()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	content := []byte("chunk_seconds: 2.0\nlanguage: en\nvad:\n  rms_threshold: 250\n  min_density: 0.1\n  amplitude_gate: 900\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadPipeline(path)
	require.NoError(t, err)

	// File values override defaults, untouched fields keep them.
	assert.Equal(t, 2.0, cfg.ChunkSeconds)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 250.0, cfg.VAD.RMSThreshold)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 128, cfg.QueueCapacity)
}

func TestLoadPipelineMissingFile(t *testing.T) {
	_, err := LoadPipeline(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPipelineRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_seconds: 9.0\n"), 0o644))

	_, err := LoadPipeline(path)
	assert.Error(t, err)
}

func TestGetAPIKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-0123456789abcdef012345")
	keys, err := GetAPIKeys()
	require.NoError(t, err)
	assert.Equal(t, "sk-0123456789abcdef012345", keys.OpenAI)

	t.Setenv("OPENAI_API_KEY", "bad-key")
	_, err = GetAPIKeys()
	assert.Error(t, err)

	t.Setenv("OPENAI_API_KEY", "")
	keys, err = GetAPIKeys()
	require.NoError(t, err)
	assert.Empty(t, keys.OpenAI)
}
