package fieldscope

import (
	"strings"
	"testing"
	"time"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/ident"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{
		Clock: ident.FixedClock{T: fixedNow},
		IDs:   &ident.SequenceGenerator{Prefix: "rec"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestExtractInstallationScenario(t *testing.T) {
	e := newTestEngine(t)
	res := e.Extract(Input{Text: "Engineer installed a new Pump at Sanchez Site on Mar 3rd, 2023."})

	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d (reason %q)", len(res.Records), res.Reason)
	}
	rec := res.Records[0]

	if rec.Location != "Sanchez Site" {
		t.Errorf("location = %q", rec.Location)
	}
	if rec.ActivityCategory != record.CategoryInstallation {
		t.Errorf("category = %q", rec.ActivityCategory)
	}
	if !strings.Contains(rec.Equipment, "Pump") {
		t.Errorf("equipment = %q, should contain Pump", rec.Equipment)
	}
	if !strings.Contains(rec.Personnel, "Engineer") {
		t.Errorf("personnel = %q, should contain Engineer", rec.Personnel)
	}
	want := time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)
	if !rec.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp, want)
	}
	if rec.Status != record.StatusCompleted {
		t.Errorf("status = %q", rec.Status)
	}
	if rec.Coordinates == nil {
		t.Error("Sanchez Site is mapped: coordinates expected")
	}
}

func TestExtractPlannedMaintenanceScenario(t *testing.T) {
	e := newTestEngine(t)
	res := e.Extract(Input{Text: "The crew will schedule maintenance on the Crane next week."})

	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]

	if rec.ActivityCategory != record.CategoryMaintenance {
		t.Errorf("category = %q", rec.ActivityCategory)
	}
	if rec.Status != record.StatusPlanned {
		t.Errorf("status = %q", rec.Status)
	}
	if !strings.Contains(rec.Equipment, "Crane") {
		t.Errorf("equipment = %q", rec.Equipment)
	}
}

func TestExtractSequentialTimestamps(t *testing.T) {
	e := newTestEngine(t)
	text := "Crew poured concrete at the north footing today.\n\nTechnician repaired the conveyor belt drive motor."
	recorded := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	res := e.Extract(Input{Text: text, Metadata: Metadata{RecordedAt: recorded}})
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}

	if !res.Records[0].Timestamp.Equal(recorded) {
		t.Errorf("first timestamp = %v, want recording date", res.Records[0].Timestamp)
	}
	gap := res.Records[1].Timestamp.Sub(res.Records[0].Timestamp)
	if gap != 10*time.Minute {
		t.Errorf("gap = %v, want 10m", gap)
	}
}

func TestExtractShortParagraphDropped(t *testing.T) {
	e := newTestEngine(t)
	res := e.Extract(Input{Text: "Short fragment."})

	if len(res.Records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(res.Records))
	}
	if res.Reason != ReasonNoQualifyingUnits {
		t.Errorf("reason = %q, want %q", res.Reason, ReasonNoQualifyingUnits)
	}
}

func TestExtractLocationFallbacks(t *testing.T) {
	e := newTestEngine(t)
	text := "Crew compacted the subgrade ahead of paving work."

	res := e.Extract(Input{Text: text})
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if got := res.Records[0].Location; got != record.UnknownLocation {
		t.Errorf("location = %q, want sentinel", got)
	}

	res = e.Extract(Input{Text: text, Metadata: Metadata{Location: "Cedar Valley Yard"}})
	if got := res.Records[0].Location; got != "Cedar Valley Yard" {
		t.Errorf("location = %q, want metadata default", got)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestEngine(t)
	res := e.Extract(Input{})

	if res.Records == nil {
		t.Fatal("Records must never be nil")
	}
	if len(res.Records) != 0 || res.Reason != ReasonNoQualifyingUnits {
		t.Errorf("got %d records, reason %q", len(res.Records), res.Reason)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("empty input is not a fault: %v", res.Diagnostics)
	}
}

func TestExtractAllRequiredFieldsPopulated(t *testing.T) {
	e := newTestEngine(t)
	text := "A spare part list was reviewed in the site office trailer.\n\n" +
		"Foreman walked the perimeter fence before the storm.\n\n" +
		"Delivered 3.5 tons of gravel to North Ridge Quarry on Jan 9 2024."

	res := e.Extract(Input{Text: text})
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}
	for i, rec := range res.Records {
		if err := rec.Validate(); err != nil {
			t.Errorf("record %d invalid: %v", i, err)
		}
	}
}

func TestExtractDeterministicUnderFixedClock(t *testing.T) {
	text := "Operator serviced the Generator at Harbor Terminal.\n\n" +
		"Crew will transport Steel beams to Riverside Depot tomorrow."
	in := Input{Text: text}

	run := func() Result {
		e, err := New(Options{
			Clock: ident.FixedClock{T: fixedNow},
			IDs:   ident.NewULIDGenerator(),
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return e.Extract(in)
	}

	a, b := run(), run()
	if len(a.Records) != len(b.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(a.Records), len(b.Records))
	}
	for i := range a.Records {
		ra, rb := a.Records[i], b.Records[i]
		if ra.ID == rb.ID {
			t.Errorf("record %d: ids must differ across runs", i)
		}
		if (ra.Coordinates == nil) != (rb.Coordinates == nil) {
			t.Errorf("record %d: coordinate presence differs", i)
		} else if ra.Coordinates != nil && *ra.Coordinates != *rb.Coordinates {
			t.Errorf("record %d: coordinates differ", i)
		}
		ra.ID, rb.ID = "", ""
		ra.Coordinates, rb.Coordinates = nil, nil
		if ra != rb {
			t.Errorf("record %d differs beyond id:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestExtractTimestampsAscendWithoutExplicitDates(t *testing.T) {
	e := newTestEngine(t)
	text := "Crew graded the access road behind the batch plant area.\n\n" +
		"Welder patched the hopper liner during the lunch break.\n\n" +
		"Surveyor staked the new drainage alignment after lunch."

	res := e.Extract(Input{Text: text})
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}
	for i := 1; i < len(res.Records); i++ {
		if !res.Records[i].Timestamp.After(res.Records[i-1].Timestamp) {
			t.Errorf("timestamps not ascending at %d", i)
		}
	}
}

type panickyResolver struct{}

func (panickyResolver) Resolve(location string) (record.Coordinates, bool) {
	if location == "Sanchez Site" {
		panic("resolver blew up")
	}
	return record.Coordinates{}, false
}

func TestExtractPerUnitFaultIsolation(t *testing.T) {
	e, err := New(Options{
		Clock:    ident.FixedClock{T: fixedNow},
		IDs:      &ident.SequenceGenerator{Prefix: "rec"},
		Resolver: panickyResolver{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text := "Engineer installed a new Pump at Sanchez Site yesterday.\n\n" +
		"Technician repaired the conveyor belt drive motor."
	res := e.Extract(Input{Text: text})

	if len(res.Records) != 1 {
		t.Fatalf("expected the healthy unit to survive, got %d records", len(res.Records))
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(res.Diagnostics))
	}
	if res.Diagnostics[0].UnitIndex != 0 {
		t.Errorf("diagnostic unit index = %d, want 0", res.Diagnostics[0].UnitIndex)
	}
	if res.Diagnostics[0].Err == nil {
		t.Error("diagnostic should carry the cause")
	}
}

func TestNewRejectsInvalidLexicon(t *testing.T) {
	lex := lexicon.Default()
	lex.Locations = nil
	if _, err := New(Options{Lexicon: lex}); err == nil {
		t.Fatal("invalid lexicon is a systemic fault: construction must fail")
	}
}

func TestExtractNotesAreVerbatim(t *testing.T) {
	e := newTestEngine(t)
	text := "Crew poured concrete at the north footing today."
	res := e.Extract(Input{Text: text})

	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if res.Records[0].Notes != text {
		t.Errorf("notes = %q, want verbatim unit text", res.Records[0].Notes)
	}
}
