// Package metrics exposes Prometheus instrumentation for the recording
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the recording pipeline.
type Metrics struct {
	// Frame ingest metrics
	FramesReceived prometheus.Counter
	FramesDropped  prometheus.Counter
	BytesWritten   prometheus.Counter

	// Session metrics
	SessionsStarted prometheus.Counter
	SessionsStopped prometheus.Counter
	ActiveSessions  prometheus.Gauge

	// Transcription metrics
	ChunksDrained         prometheus.Counter
	ChunksSkippedSilent   prometheus.Counter
	TranscriptionRequests prometheus.Counter
	TranscriptionErrors   prometheus.Counter
	TranscriptionDuration prometheus.Histogram
}

// New creates and registers all pipeline metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FramesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_frames_received_total",
			Help: "Total number of audio frames delivered by the capture transport",
		}),
		FramesDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_frames_dropped_total",
			Help: "Total number of frames dropped because the ingest queue was full",
		}),
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_bytes_written_total",
			Help: "Total number of PCM bytes persisted to WAV files",
		}),
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_sessions_started_total",
			Help: "Total number of recording sessions started",
		}),
		SessionsStopped: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_sessions_stopped_total",
			Help: "Total number of recording sessions stopped",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "recorder_active_sessions",
			Help: "Current number of active recording sessions (0 or 1)",
		}),
		ChunksDrained: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_chunks_drained_total",
			Help: "Total number of transcription buffer drains",
		}),
		ChunksSkippedSilent: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_chunks_skipped_silent_total",
			Help: "Total number of chunks skipped by voice activity detection",
		}),
		TranscriptionRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_transcription_requests_total",
			Help: "Total number of transcription API calls",
		}),
		TranscriptionErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "recorder_transcription_errors_total",
			Help: "Total number of failed transcription API calls",
		}),
		TranscriptionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recorder_transcription_duration_seconds",
			Help:    "Latency of transcription API calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// NewNop creates metrics bound to a private registry, for tests and for
// callers that do not scrape.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
