// Package analytics aggregates extracted log records into the summary
// shapes the dashboard views consume: per-category and per-status
// counts, per-location activity, and a daily timeline.
package analytics

import (
	"sort"
	"time"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Analyzer accumulates record-level stats. Feed it records one at a
// time with Process, then read the aggregate with Summary or Timeline.
type Analyzer struct {
	total        int
	byCategory   map[record.Category]int
	byStatus     map[record.Status]int
	byLocation   map[string]int
	byDay        map[string]int
	measurements int
	mapped       int
	start, end   time.Time
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		byCategory: make(map[record.Category]int),
		byStatus:   make(map[record.Status]int),
		byLocation: make(map[string]int),
		byDay:      make(map[string]int),
	}
}

// Process consumes one record's fields.
func (a *Analyzer) Process(rec record.LogRecord) {
	a.total++
	a.byCategory[rec.ActivityCategory]++
	a.byStatus[rec.Status]++
	a.byLocation[rec.Location]++
	a.byDay[rec.Timestamp.UTC().Format("2006-01-02")]++

	if rec.Measurement != "" {
		a.measurements++
	}
	if rec.Coordinates != nil {
		a.mapped++
	}

	if a.start.IsZero() || rec.Timestamp.Before(a.start) {
		a.start = rec.Timestamp
	}
	if rec.Timestamp.After(a.end) {
		a.end = rec.Timestamp
	}
}

// Summary is the aggregate view over every processed record.
type Summary struct {
	Total        int
	ByCategory   map[record.Category]int
	ByStatus     map[record.Status]int
	ByLocation   map[string]int
	Measurements int
	Mapped       int
	Start        time.Time
	End          time.Time
}

// Summary returns a snapshot of the accumulated stats. The maps are
// copies; mutating them does not affect the analyzer.
func (a *Analyzer) Summary() Summary {
	return Summary{
		Total:        a.total,
		ByCategory:   copyMap(a.byCategory),
		ByStatus:     copyMap(a.byStatus),
		ByLocation:   copyMap(a.byLocation),
		Measurements: a.measurements,
		Mapped:       a.mapped,
		Start:        a.start,
		End:          a.end,
	}
}

// Bucket is one day's record count on the activity timeline.
type Bucket struct {
	Day   string // YYYY-MM-DD, UTC
	Count int
}

// Timeline returns daily record counts in chronological order.
func (a *Analyzer) Timeline() []Bucket {
	out := make([]Bucket, 0, len(a.byDay))
	for day, count := range a.byDay {
		out = append(out, Bucket{Day: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}

// Summarize is a convenience over a whole record sequence.
func Summarize(records []record.LogRecord) Summary {
	a := NewAnalyzer()
	for _, rec := range records {
		a.Process(rec)
	}
	return a.Summary()
}

func copyMap[K comparable](in map[K]int) map[K]int {
	out := make(map[K]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
