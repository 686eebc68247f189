package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"live-whisper/internal/app/model"
)

func testRecording() model.Recording {
	started := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	return model.Recording{
		StartedAt:      started,
		StoppedAt:      started.Add(95 * time.Second),
		WAVPath:        "resource/recording-20260828-100000.wav",
		TranscriptPath: "resource/recording-20260828-100000-transcript.txt",
		SampleRate:     48000,
		DurationSec:    95.0,
		SegmentCount:   12,
		Model:          "whisper-1",
		Language:       "zh",
		Transcript:     "[2026-08-28 10:00:05]  你好",
		EstimatedCost:  0.0095,
	}
}

func TestRecordRecording(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := testRecording()

	mock.ExpectExec("INSERT INTO recordings").
		WithArgs(rec.StartedAt, rec.StoppedAt, rec.WAVPath, rec.TranscriptPath,
			rec.SampleRate, rec.DurationSec, rec.SegmentCount, rec.Model, rec.Language,
			rec.Transcript, rec.EstimatedCost, rec.HasError, rec.ErrorMessage).
		WillReturnResult(sqlmock.NewResult(1, 1))

	sdb := NewWithDB(db)
	require.NoError(t, sdb.RecordRecording(rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRecordingPropagatesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO recordings").
		WillReturnError(errors.New("disk full"))

	sdb := NewWithDB(db)
	err = sdb.RecordRecording(testRecording())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGetRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := testRecording()
	rows := sqlmock.NewRows([]string{
		"id", "started_at", "stopped_at", "wav_path", "transcript_path", "sample_rate",
		"duration_sec", "segment_count", "model", "language", "transcript",
		"estimated_cost", "has_error", "error_message",
	}).AddRow(1, rec.StartedAt, rec.StoppedAt, rec.WAVPath, rec.TranscriptPath,
		rec.SampleRate, rec.DurationSec, rec.SegmentCount, rec.Model, rec.Language,
		rec.Transcript, rec.EstimatedCost, 0, "")

	mock.ExpectQuery("SELECT (.+) FROM recordings").
		WithArgs(10).
		WillReturnRows(rows)

	sdb := NewWithDB(db)
	got, err := sdb.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, rec.WAVPath, got[0].WAVPath)
	assert.Equal(t, rec.SegmentCount, got[0].SegmentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM recordings").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "started_at", "stopped_at", "wav_path", "transcript_path", "sample_rate",
			"duration_sec", "segment_count", "model", "language", "transcript",
			"estimated_cost", "has_error", "error_message",
		}))

	sdb := NewWithDB(db)
	got, err := sdb.GetRecent(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
