// Package store defines the persistence boundary for extracted logs.
// The engine itself never touches a store; callers persist a
// transcription together with its extracted records after extraction
// returns.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Transcription is one stored source text with its metadata and an
// optional externally generated summary. ID is a caller-supplied
// identifier (a UUID in practice) keying the transcription and its
// records together.
type Transcription struct {
	ID         string
	Title      string
	Text       string
	Summary    string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// Validate checks required fields before persistence.
func (t *Transcription) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("transcription id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("transcription text is required")
	}
	return nil
}

// Store persists transcriptions and their extracted log records.
type Store interface {
	Close() error

	// SaveTranscription stores the transcription and replaces its
	// record set atomically. Saving the same ID again overwrites.
	SaveTranscription(ctx context.Context, t Transcription, records []record.LogRecord) error

	GetTranscription(ctx context.Context, id string) (Transcription, bool, error)
	ListTranscriptions(ctx context.Context, limit int) ([]Transcription, error)

	// GetRecords returns a transcription's records in extraction order.
	GetRecords(ctx context.Context, transcriptionID string) ([]record.LogRecord, error)

	// RecentRecords returns the newest records across all
	// transcriptions, ordered by timestamp descending.
	RecentRecords(ctx context.Context, limit int) ([]record.LogRecord, error)
}
