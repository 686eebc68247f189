package recorder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"live-whisper/internal/app/audio"
)

// transcribeTimeout bounds a single chunk's API round trip.
const transcribeTimeout = 30 * time.Second

// runTranscription is the chunking goroutine. It polls on a short ticker,
// drains the buffer once a full chunk duration has elapsed, gates the
// chunk through voice detection, and ships voiced chunks to the
// transcriber. Silent chunks are discarded without an API call. It exits
// when the stop signal is observed; any chunk already in flight finishes
// first because the call happens inside the loop iteration.
func (r *Registry) runTranscription(s *session) {
	defer close(s.transDone)

	ticker := time.NewTicker(r.cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			r.pollOnce(s)
		}
	}
}

// pollOnce drains and transcribes at most one chunk. Returns without work
// when the chunk duration has not elapsed or nothing was buffered.
func (r *Registry) pollOnce(s *session) {
	now := time.Now()

	r.mu.Lock()
	if now.Sub(s.lastDrain) < r.cfg.ChunkDuration() {
		r.mu.Unlock()
		return
	}
	buf := s.buffer
	s.buffer = nil
	s.lastDrain = now
	rate := s.stats.DetectedSampleRate
	r.mu.Unlock()

	if len(buf) == 0 {
		return
	}
	if rate == 0 {
		rate = r.cfg.SampleRate
	}
	r.metrics.ChunksDrained.Inc()

	total := 0
	for _, frame := range buf {
		total += len(frame)
	}
	chunk := make([]int16, 0, total)
	for _, frame := range buf {
		chunk = append(chunk, frame...)
	}

	if !audio.IsVoiced(chunk, r.cfg.VAD) {
		r.metrics.ChunksSkippedSilent.Inc()
		r.logger.Debug("chunk skipped as silence",
			zap.String("token", s.token),
			zap.Int("samples", len(chunk)))
		return
	}

	wavData, err := audio.EncodeWAV(chunk, rate)
	if err != nil {
		r.logger.Error("chunk encode failed", zap.String("token", s.token), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), transcribeTimeout)
	defer cancel()

	r.metrics.TranscriptionRequests.Inc()
	started := time.Now()
	text, err := r.transcriber.TranscribeChunk(ctx, wavData, r.cfg.Language)
	r.metrics.TranscriptionDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		r.metrics.TranscriptionErrors.Inc()
		r.logger.Error("chunk transcription failed",
			zap.String("token", s.token),
			zap.Float64("chunk_sec", float64(len(chunk))/float64(rate)),
			zap.Error(err))
		r.appendSegment(s, TranscriptSegment{Time: time.Now(), Err: err.Error()})
		return
	}

	text = r.normalize(text)
	if text == "" {
		return
	}
	r.appendSegment(s, TranscriptSegment{Time: time.Now(), Text: text})
	r.logger.Info("chunk transcribed",
		zap.String("token", s.token),
		zap.Int("chars", len([]rune(text))))
}

// appendSegment records a segment and, for failures, the session-level
// last error.
func (r *Registry) appendSegment(s *session, seg TranscriptSegment) {
	r.mu.Lock()
	s.segments = append(s.segments, seg)
	if seg.Err != "" {
		s.lastError = seg.Err
	}
	r.mu.Unlock()
}
