package recorder

import (
	"go.uber.org/zap"

	"live-whisper/internal/app/audio"
)

// runIngest is the WAV writer goroutine. It drains the bounded queue and
// appends PCM to the session's WAV file, opening the file lazily on the
// first frame so the header carries the detected sample rate. It exits on
// the nil-pcm sentinel, the stop signal, or a terminal write error.
func (r *Registry) runIngest(s *session) {
	defer close(s.ingestDone)

	var w *audio.Writer
	defer func() {
		if w == nil {
			return
		}
		if err := w.Close(); err != nil {
			r.logger.Error("wav finalize failed",
				zap.String("token", s.token),
				zap.String("path", s.wavPath),
				zap.Error(err))
		}
	}()

	for {
		select {
		case <-s.stop:
			return
		case item := <-s.queue:
			if item.pcm == nil {
				return
			}
			if w == nil {
				rate := r.detectedRate(s)
				nw, err := audio.NewWriter(s.wavPath, rate)
				if err != nil {
					r.abortIngest(s, "open wav: "+err.Error())
					return
				}
				w = nw
				r.logger.Info("wav writer opened",
					zap.String("path", s.wavPath),
					zap.Int("sample_rate", rate))
			}
			if err := w.Write(item.pcm); err != nil {
				r.abortIngest(s, "write wav: "+err.Error())
				return
			}
			r.metrics.BytesWritten.Add(float64(len(item.pcm)))

			r.mu.Lock()
			s.stats.BytesWritten += int64(len(item.pcm))
			s.stats.LastRMS = item.rms
			r.mu.Unlock()
		}
	}
}

// detectedRate reads the sample rate seen on the first frame, falling back
// to the configured rate when the queue outran detection.
func (r *Registry) detectedRate(s *session) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.stats.DetectedSampleRate != 0 {
		return s.stats.DetectedSampleRate
	}
	return r.cfg.SampleRate
}

// abortIngest records a terminal resource error. The session keeps running
// so in-memory transcription continues; the error surfaces at Stop.
func (r *Registry) abortIngest(s *session, msg string) {
	r.logger.Error("ingest worker aborted", zap.String("token", s.token), zap.String("reason", msg))
	r.mu.Lock()
	s.ingestErr = msg
	r.mu.Unlock()
}
