package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu             sync.RWMutex
	transcriptions map[string]store.Transcription
	records        map[string][]record.LogRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		transcriptions: make(map[string]store.Transcription),
		records:        make(map[string][]record.LogRecord),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveTranscription stores the transcription and replaces its records.
func (s *Store) SaveTranscription(ctx context.Context, t store.Transcription, records []record.LogRecord) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcriptions[t.ID] = t
	s.records[t.ID] = copyRecords(records)
	return nil
}

// GetTranscription returns a transcription by ID.
func (s *Store) GetTranscription(ctx context.Context, id string) (store.Transcription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transcriptions[id]
	return t, ok, nil
}

// ListTranscriptions returns transcriptions newest-first by creation time.
func (s *Store) ListTranscriptions(ctx context.Context, limit int) ([]store.Transcription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]store.Transcription, 0, len(s.transcriptions))
	for _, t := range s.transcriptions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetRecords returns a transcription's records in extraction order.
func (s *Store) GetRecords(ctx context.Context, transcriptionID string) ([]record.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyRecords(s.records[transcriptionID]), nil
}

// RecentRecords returns the newest records across all transcriptions.
func (s *Store) RecentRecords(ctx context.Context, limit int) ([]record.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	var all []record.LogRecord
	for _, recs := range s.records {
		all = append(all, copyRecords(recs)...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func copyRecords(in []record.LogRecord) []record.LogRecord {
	out := make([]record.LogRecord, len(in))
	copy(out, in)
	for i := range out {
		if out[i].Coordinates != nil {
			c := *out[i].Coordinates
			out[i].Coordinates = &c
		}
	}
	return out
}
