package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"live-whisper/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS recordings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TIMESTAMP NOT NULL,
	stopped_at TIMESTAMP NOT NULL,
	wav_path TEXT NOT NULL,
	transcript_path TEXT NOT NULL DEFAULT '',
	sample_rate INTEGER NOT NULL,
	duration_sec REAL NOT NULL,
	segment_count INTEGER NOT NULL,
	model TEXT NOT NULL,
	language TEXT NOT NULL,
	transcript TEXT NOT NULL DEFAULT '',
	estimated_cost REAL NOT NULL DEFAULT 0,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);`

// SQLiteDB stores recording history in a local sqlite database.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and if needed creates) the database at dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", dbFilePath, err)
	}

	sdb := &SQLiteDB{db: db}
	if err := sdb.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return sdb, nil
}

// NewWithDB wraps an already-open database handle. The schema is assumed
// to exist; used by tests.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) migrate() error {
	if _, err := sdb.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create recordings table: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

// RecordRecording inserts one finished session.
func (sdb *SQLiteDB) RecordRecording(rec model.Recording) error {
	insertSQL := `INSERT INTO recordings
		(started_at, stopped_at, wav_path, transcript_path, sample_rate, duration_sec,
		 segment_count, model, language, transcript, estimated_cost, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := sdb.db.Exec(insertSQL,
		rec.StartedAt, rec.StoppedAt, rec.WAVPath, rec.TranscriptPath, rec.SampleRate,
		rec.DurationSec, rec.SegmentCount, rec.Model, rec.Language, rec.Transcript,
		rec.EstimatedCost, rec.HasError, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert recording: %w", err)
	}
	return nil
}

// GetRecent returns the most recent recordings, newest first.
func (sdb *SQLiteDB) GetRecent(limit int) ([]model.Recording, error) {
	query := `
		SELECT id, started_at, stopped_at, wav_path, transcript_path, sample_rate,
		       duration_sec, segment_count, model, language, transcript,
		       estimated_cost, has_error, error_message
		FROM recordings
		ORDER BY stopped_at DESC
		LIMIT ?;`

	rows, err := sdb.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	recordings := make([]model.Recording, 0)
	for rows.Next() {
		var r model.Recording
		err = rows.Scan(&r.ID, &r.StartedAt, &r.StoppedAt, &r.WAVPath, &r.TranscriptPath,
			&r.SampleRate, &r.DurationSec, &r.SegmentCount, &r.Model, &r.Language,
			&r.Transcript, &r.EstimatedCost, &r.HasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		recordings = append(recordings, r)
	}

	return recordings, rows.Err()
}
