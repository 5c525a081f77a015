package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and
// initializes the schema.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS transcriptions (
	id TEXT PRIMARY KEY,
	title TEXT,
	text TEXT NOT NULL,
	summary TEXT,
	recorded_at TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS log_records (
	id TEXT PRIMARY KEY,
	transcription_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	timestamp TEXT NOT NULL,
	location TEXT NOT NULL,
	activity_category TEXT NOT NULL,
	activity_type TEXT NOT NULL,
	equipment TEXT NOT NULL,
	personnel TEXT NOT NULL,
	material TEXT NOT NULL,
	measurement TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	notes TEXT NOT NULL,
	reference_id TEXT NOT NULL,
	lat REAL,
	lng REAL,
	FOREIGN KEY(transcription_id) REFERENCES transcriptions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_log_records_transcription
	ON log_records(transcription_id, seq);
CREATE INDEX IF NOT EXISTS idx_log_records_timestamp
	ON log_records(timestamp);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveTranscription stores the transcription and replaces its record
// set in one transaction.
func (s *sqliteStore) SaveTranscription(ctx context.Context, t store.Transcription, records []record.LogRecord) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO transcriptions (id, title, text, summary, recorded_at, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	title=excluded.title,
	text=excluded.text,
	summary=excluded.summary,
	recorded_at=excluded.recorded_at,
	created_at=excluded.created_at;
`
	if _, err := tx.ExecContext(ctx, upsert,
		t.ID, t.Title, t.Text, t.Summary,
		formatTime(t.RecordedAt), formatTime(t.CreatedAt)); err != nil {
		return fmt.Errorf("upsert transcription: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM log_records WHERE transcription_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	const insert = `
INSERT INTO log_records (
	id, transcription_id, seq, timestamp, location,
	activity_category, activity_type, equipment, personnel, material,
	measurement, status, notes, reference_id, lat, lng
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	for i, rec := range records {
		var lat, lng any
		if rec.Coordinates != nil {
			lat, lng = rec.Coordinates.Lat, rec.Coordinates.Lng
		}
		if _, err := tx.ExecContext(ctx, insert,
			rec.ID, t.ID, i, formatTime(rec.Timestamp), rec.Location,
			string(rec.ActivityCategory), rec.ActivityType,
			rec.Equipment, rec.Personnel, rec.Material,
			rec.Measurement, string(rec.Status), rec.Notes, rec.ReferenceID,
			lat, lng); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetTranscription returns a transcription by ID.
func (s *sqliteStore) GetTranscription(ctx context.Context, id string) (store.Transcription, bool, error) {
	const query = `
SELECT id, title, text, summary, recorded_at, created_at
FROM transcriptions WHERE id = ?;
`
	var t store.Transcription
	var recordedAt, createdAt string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Text, &t.Summary, &recordedAt, &createdAt)
	if err == sql.ErrNoRows {
		return store.Transcription{}, false, nil
	}
	if err != nil {
		return store.Transcription{}, false, err
	}

	t.RecordedAt = parseTime(recordedAt)
	t.CreatedAt = parseTime(createdAt)
	return t, true, nil
}

// ListTranscriptions returns transcriptions newest-first.
func (s *sqliteStore) ListTranscriptions(ctx context.Context, limit int) ([]store.Transcription, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
SELECT id, title, text, summary, recorded_at, created_at
FROM transcriptions ORDER BY created_at DESC LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Transcription
	for rows.Next() {
		var t store.Transcription
		var recordedAt, createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &t.Text, &t.Summary, &recordedAt, &createdAt); err != nil {
			return nil, err
		}
		t.RecordedAt = parseTime(recordedAt)
		t.CreatedAt = parseTime(createdAt)
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetRecords returns a transcription's records in extraction order.
func (s *sqliteStore) GetRecords(ctx context.Context, transcriptionID string) ([]record.LogRecord, error) {
	const query = recordColumns + `WHERE transcription_id = ? ORDER BY seq;`
	rows, err := s.db.QueryContext(ctx, query, transcriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// RecentRecords returns the newest records across all transcriptions.
func (s *sqliteStore) RecentRecords(ctx context.Context, limit int) ([]record.LogRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = recordColumns + `ORDER BY timestamp DESC LIMIT ?;`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

const recordColumns = `
SELECT id, timestamp, location, activity_category, activity_type,
	equipment, personnel, material, measurement, status, notes,
	reference_id, lat, lng
FROM log_records
`

func scanRecords(rows *sql.Rows) ([]record.LogRecord, error) {
	var out []record.LogRecord
	for rows.Next() {
		var rec record.LogRecord
		var ts, category, status string
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&rec.ID, &ts, &rec.Location, &category, &rec.ActivityType,
			&rec.Equipment, &rec.Personnel, &rec.Material, &rec.Measurement,
			&status, &rec.Notes, &rec.ReferenceID, &lat, &lng); err != nil {
			return nil, err
		}
		rec.Timestamp = parseTime(ts)
		rec.ActivityCategory = record.Category(category)
		rec.Status = record.Status(status)
		if lat.Valid && lng.Valid {
			rec.Coordinates = &record.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
