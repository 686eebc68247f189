package repository

import "live-whisper/internal/app/model"

// RecordingDAO persists finished recording sessions.
type RecordingDAO interface {
	Close() error

	// RecordRecording inserts one finished session.
	RecordRecording(rec model.Recording) error

	// GetRecent returns the most recent recordings, newest first.
	GetRecent(limit int) ([]model.Recording, error)
}
