package recorder

import (
	"time"
)

// Frame is one unit of audio handed over by the capture transport: mono
// PCM-16 samples plus the rate the transport negotiated. Frames are
// consumed immediately and never retained.
type Frame struct {
	Samples    []int16
	SampleRate int
}

// ingestItem is the unit queued for the ingest worker. A nil pcm slice is
// the stop sentinel.
type ingestItem struct {
	pcm []byte
	rms float64
}

// TranscriptSegment is one transcribed chunk. Segments are append-only
// and strictly ordered by completion time. Err is set for chunks whose
// API call failed; such segments carry no text.
type TranscriptSegment struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
	Err  string    `json:"error,omitempty"`
}

// SessionStats tracks ingest progress. Mutated by the ingest worker under
// the registry lock, read by the snapshot layer and the cost estimator.
type SessionStats struct {
	BytesWritten       int64   `json:"bytes_written"`
	LastRMS            float64 `json:"last_rms"`
	DetectedSampleRate int     `json:"detected_sample_rate"`
}

// sessionState tracks the lifecycle of one token.
type sessionState int

const (
	stateCreated sessionState = iota
	stateRecording
	stateStopping
	stateTerminated
)

// session owns all per-token state. Everything mutable is guarded by the
// registry lock; the channels coordinate the two workers.
type session struct {
	token     string
	state     sessionState
	startedAt time.Time
	wavPath   string

	// queue feeds the ingest worker; bounded, drop-on-full so the capture
	// callback never stalls.
	queue chan ingestItem

	// buffer accumulates samples between transcription drains. Unbounded;
	// the drain cadence bounds it in practice.
	buffer [][]int16

	segments  []TranscriptSegment
	stats     SessionStats
	lastDrain time.Time

	// lastError holds the most recent transcription API failure, for the
	// snapshot layer.
	lastError string

	// ingestErr is a terminal resource failure (WAV open/write) that
	// aborted the ingest worker; surfaced at Stop.
	ingestErr string

	stop       chan struct{}
	ingestDone chan struct{}
	transDone  chan struct{}
}

func newSession(token, wavPath string, queueCapacity int, now time.Time) *session {
	return &session{
		token:     token,
		state:     stateCreated,
		startedAt: now,
		wavPath:   wavPath,
		queue:     make(chan ingestItem, queueCapacity),
		segments:  make([]TranscriptSegment, 0),
		lastDrain: now,

		stop:       make(chan struct{}),
		ingestDone: make(chan struct{}),
		transDone:  make(chan struct{}),
	}
}
