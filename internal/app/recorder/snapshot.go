package recorder

import (
	"time"

	"live-whisper/internal/app/cost"
)

// Snapshot is a point-in-time view of the registry for status surfaces.
// Segments are copied so the caller can hold the snapshot without racing
// the transcription worker.
type Snapshot struct {
	Active     bool                `json:"active"`
	Token      string              `json:"token,omitempty"`
	StartedAt  time.Time           `json:"started_at,omitempty"`
	ElapsedSec float64             `json:"elapsed_sec"`
	WAVPath    string              `json:"wav_path,omitempty"`
	Stats      SessionStats        `json:"stats"`
	Segments   []TranscriptSegment `json:"segments,omitempty"`
	LastError  string              `json:"last_error,omitempty"`
	Model      string              `json:"model"`
	Language   string              `json:"language"`
	Estimate   cost.Estimate       `json:"estimate"`
}

// Snapshot captures the current session state, or an inactive view when no
// session holds the slot. The live cost estimate reflects audio written so
// far plus the transcript accumulated so far.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	s := r.active
	if s == nil {
		r.mu.Unlock()
		return Snapshot{Model: r.cfg.Model, Language: r.cfg.Language}
	}
	snap := Snapshot{
		Active:    true,
		Token:     s.token,
		StartedAt: s.startedAt,
		WAVPath:   s.wavPath,
		Stats:     s.stats,
		LastError: s.lastError,
		Model:     r.cfg.Model,
		Language:  r.cfg.Language,
	}
	snap.Segments = make([]TranscriptSegment, len(s.segments))
	copy(snap.Segments, s.segments)
	r.mu.Unlock()

	snap.ElapsedSec = time.Since(snap.StartedAt).Seconds()
	rate := snap.Stats.DetectedSampleRate
	if rate == 0 {
		rate = r.cfg.SampleRate
	}
	chars := 0
	for _, seg := range snap.Segments {
		chars += len([]rune(seg.Text))
	}
	snap.Estimate = cost.EstimateCost(r.cfg.Model, cost.AudioMinutesFromBytes(snap.Stats.BytesWritten, rate), chars)
	return snap
}
