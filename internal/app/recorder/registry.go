package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"live-whisper/internal/app/api"
	"live-whisper/internal/app/audio"
	"live-whisper/internal/app/cost"
	"live-whisper/internal/app/model"
	"live-whisper/internal/app/repository"
	"live-whisper/internal/app/textnorm"
	"live-whisper/internal/config"
	"live-whisper/internal/metrics"
)

// StopStatus classifies the terminal outcome of a session.
type StopStatus int

const (
	// StatusNotRecording means the token did not match the active session;
	// the stop request was a no-op.
	StatusNotRecording StopStatus = iota
	// StatusCompleted means audio was captured and the transcript was saved.
	StatusCompleted
	// StatusNoSpeech means no usable audio was captured.
	StatusNoSpeech
	// StatusFileMissing means audio was written but the WAV file is gone.
	StatusFileMissing
)

func (s StopStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusNoSpeech:
		return "no_speech"
	case StatusFileMissing:
		return "file_missing"
	default:
		return "not_recording"
	}
}

// StopResult summarizes a terminated session for the caller.
type StopResult struct {
	Status         StopStatus    `json:"status"`
	Message        string        `json:"message"`
	WAVPath        string        `json:"wav_path,omitempty"`
	TranscriptPath string        `json:"transcript_path,omitempty"`
	Transcript     string        `json:"transcript,omitempty"`
	DurationSec    float64       `json:"duration_sec"`
	SegmentCount   int           `json:"segment_count"`
	Estimate       cost.Estimate `json:"estimate"`
}

// Registry is the single-flight owner of recording sessions. At most one
// session is active at a time; Start refuses while the slot is held, and
// Stop releases the slot before joining the workers so a new session can
// begin while the old one is still flushing.
type Registry struct {
	cfg         config.Pipeline
	transcriber api.ChunkTranscriber
	normalize   textnorm.Normalizer
	dao         repository.RecordingDAO
	metrics     *metrics.Metrics
	logger      *zap.Logger

	mu     sync.Mutex
	active *session
}

// NewRegistry wires a registry. dao may be nil when history persistence is
// disabled; metrics and logger fall back to no-op implementations.
func NewRegistry(cfg config.Pipeline, transcriber api.ChunkTranscriber, dao repository.RecordingDAO, m *metrics.Metrics, logger *zap.Logger) *Registry {
	if m == nil {
		m = metrics.NewNop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		cfg:         cfg,
		transcriber: transcriber,
		normalize:   textnorm.ForLanguage(cfg.Language),
		dao:         dao,
		metrics:     m,
		logger:      logger,
	}
}

// Start claims the active slot, allocates a token and a WAV path, and
// launches the ingest and transcription workers. Starting while another
// session holds the slot is a no-op: the live session's token is returned
// with started false.
func (r *Registry) Start() (token string, started bool) {
	if err := os.MkdirAll(r.cfg.ResourceDir, 0o755); err != nil {
		// The ingest worker will fail to open the WAV file and surface
		// this at Stop.
		r.logger.Error("create resource dir failed",
			zap.String("dir", r.cfg.ResourceDir),
			zap.Error(err))
	}

	now := time.Now()
	token = uuid.NewString()
	wavPath := filepath.Join(r.cfg.ResourceDir, fmt.Sprintf("recording-%s.wav", now.Format("20060102-150405")))
	s := newSession(token, wavPath, r.cfg.QueueCapacity, now)

	r.mu.Lock()
	if r.active != nil {
		activeToken := r.active.token
		r.mu.Unlock()
		r.logger.Info("start ignored, session already active", zap.String("token", activeToken))
		return activeToken, false
	}
	s.state = stateRecording
	r.active = s
	r.mu.Unlock()

	go r.runIngest(s)
	go r.runTranscription(s)

	r.metrics.SessionsStarted.Inc()
	r.metrics.ActiveSessions.Set(1)
	r.logger.Info("recording session started",
		zap.String("token", token),
		zap.String("wav_path", wavPath))
	return token, true
}

// HandleFrame feeds one captured frame into the active session. It never
// blocks: gain and RMS are computed inline, the frame is appended to the
// transcription buffer, and the ingest push drops the frame when the queue
// is full. Frames arriving with no active session are discarded.
func (r *Registry) HandleFrame(f Frame) {
	if len(f.Samples) == 0 {
		return
	}

	samples := audio.ApplyGain(f.Samples, r.cfg.Gain)
	rms := audio.RMS(samples)
	pcm := audio.SamplesToBytes(samples)

	r.mu.Lock()
	s := r.active
	if s == nil || s.state != stateRecording {
		r.mu.Unlock()
		return
	}
	if s.stats.DetectedSampleRate == 0 {
		s.stats.DetectedSampleRate = f.SampleRate
		r.logger.Info("sample rate detected", zap.Int("sample_rate", f.SampleRate))
	} else if f.SampleRate != 0 && f.SampleRate != s.stats.DetectedSampleRate {
		r.logger.Warn("sample rate changed mid-session",
			zap.Int("was", s.stats.DetectedSampleRate),
			zap.Int("now", f.SampleRate))
		s.stats.DetectedSampleRate = f.SampleRate
	}
	s.buffer = append(s.buffer, samples)
	r.mu.Unlock()

	r.metrics.FramesReceived.Inc()

	select {
	case s.queue <- ingestItem{pcm: pcm, rms: rms}:
	default:
		r.metrics.FramesDropped.Inc()
		r.logger.Debug("ingest queue full, frame dropped", zap.String("token", s.token))
	}
}

// Stop terminates the session identified by token. The active slot is
// released immediately, the stop sentinel and signal are delivered, and
// both workers are joined with a bounded timeout before the transcript is
// finalized. A token that does not match the active session is a no-op.
func (r *Registry) Stop(token string) StopResult {
	r.mu.Lock()
	s := r.active
	if s == nil || s.token != token {
		r.mu.Unlock()
		return StopResult{Status: StatusNotRecording, Message: "no matching recording session"}
	}
	s.state = stateStopping
	r.active = nil
	r.mu.Unlock()

	r.metrics.ActiveSessions.Set(0)

	// Sentinel first so an idle ingest worker wakes from its queue receive;
	// non-blocking because the queue may be full, in which case the closed
	// stop channel reaches it instead.
	select {
	case s.queue <- ingestItem{}:
	default:
	}
	close(s.stop)

	r.join(s.ingestDone, "ingest", s.token)
	r.join(s.transDone, "transcription", s.token)

	r.mu.Lock()
	s.state = stateTerminated
	stats := s.stats
	segments := make([]TranscriptSegment, len(s.segments))
	copy(segments, s.segments)
	ingestErr := s.ingestErr
	r.mu.Unlock()

	res := r.finalize(s, stats, segments, ingestErr)
	r.metrics.SessionsStopped.Inc()
	r.logger.Info("recording session stopped",
		zap.String("token", s.token),
		zap.Int("status", int(res.Status)),
		zap.Float64("duration_sec", res.DurationSec),
		zap.Int("segments", res.SegmentCount))
	return res
}

// join waits for a worker with the configured timeout. A worker that fails
// to exit is abandoned; the session is already off the active slot so it
// can leak nothing but its own goroutine.
func (r *Registry) join(done <-chan struct{}, name, token string) {
	select {
	case <-done:
	case <-time.After(r.cfg.JoinTimeout()):
		r.logger.Warn("worker did not exit in time, abandoning",
			zap.String("worker", name),
			zap.String("token", token))
	}
}

// finalize classifies the outcome and persists the transcript and the
// history row. Best effort throughout: a failed transcript write or DAO
// insert downgrades nothing, it is logged and the result still returned.
func (r *Registry) finalize(s *session, stats SessionStats, segments []TranscriptSegment, ingestErr string) StopResult {
	stoppedAt := time.Now()
	durationSec := stoppedAt.Sub(s.startedAt).Seconds()
	sampleRate := stats.DetectedSampleRate
	if sampleRate == 0 {
		sampleRate = r.cfg.SampleRate
	}

	transcript := FormatSegments(segments)
	res := StopResult{
		DurationSec:  durationSec,
		SegmentCount: len(segments),
		Transcript:   transcript,
		Estimate:     cost.EstimateCost(r.cfg.Model, cost.AudioMinutesFromBytes(stats.BytesWritten, sampleRate), len(transcript)),
	}

	_, statErr := os.Stat(s.wavPath)
	switch {
	case statErr != nil && stats.BytesWritten == 0:
		res.Status = StatusNoSpeech
		res.Message = "recording too short or no speech detected"
	case statErr != nil:
		res.Status = StatusFileMissing
		res.Message = "recording file missing"
	case stats.BytesWritten == 0 || transcript == "":
		res.Status = StatusNoSpeech
		res.Message = "recording too short or no speech detected"
		res.WAVPath = s.wavPath
	default:
		res.Status = StatusCompleted
		res.Message = fmt.Sprintf("recording stopped (%.1f seconds)", durationSec)
		res.WAVPath = s.wavPath

		path, err := WriteTranscriptFile(s.wavPath, sampleRate, r.cfg.Model, transcript, stoppedAt)
		if err != nil {
			r.logger.Error("transcript save failed", zap.String("token", s.token), zap.Error(err))
		} else {
			res.TranscriptPath = path
		}
	}
	if ingestErr != "" {
		res.Message = fmt.Sprintf("%s (ingest error: %s)", res.Message, ingestErr)
	}

	r.record(s, res, stats, sampleRate, stoppedAt, ingestErr)
	return res
}

// record writes the history row when a DAO is wired.
func (r *Registry) record(s *session, res StopResult, stats SessionStats, sampleRate int, stoppedAt time.Time, ingestErr string) {
	if r.dao == nil {
		return
	}
	rec := model.Recording{
		StartedAt:      s.startedAt,
		StoppedAt:      stoppedAt,
		WAVPath:        res.WAVPath,
		TranscriptPath: res.TranscriptPath,
		SampleRate:     sampleRate,
		DurationSec:    res.DurationSec,
		SegmentCount:   res.SegmentCount,
		Model:          r.cfg.Model,
		Language:       r.cfg.Language,
		Transcript:     res.Transcript,
		EstimatedCost:  res.Estimate.Total,
	}
	if res.Status != StatusCompleted {
		rec.HasError = 1
		rec.ErrorMessage = res.Message
	}
	if ingestErr != "" {
		rec.HasError = 1
		rec.ErrorMessage = ingestErr
	}
	if err := r.dao.RecordRecording(rec); err != nil {
		r.logger.Error("history insert failed", zap.String("token", s.token), zap.Error(err))
	}
}
