package model

import "time"

// Recording is one finished recording session as stored in the history
// database.
type Recording struct {
	ID             int64     `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	StoppedAt      time.Time `json:"stopped_at"`
	WAVPath        string    `json:"wav_path"`
	TranscriptPath string    `json:"transcript_path"`
	SampleRate     int       `json:"sample_rate"`
	DurationSec    float64   `json:"duration_sec"`
	SegmentCount   int       `json:"segment_count"`
	Model          string    `json:"model"`
	Language       string    `json:"language"`
	Transcript     string    `json:"transcript"`
	EstimatedCost  float64   `json:"estimated_cost"`
	HasError       int       `json:"has_error"`
	ErrorMessage   string    `json:"error_message"`
}
