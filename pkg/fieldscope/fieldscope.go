// Package fieldscope turns unstructured transcription text into a
// sequence of typed activity log records. The engine is deterministic
// for a fixed input and fixed clock: the only varying outputs are
// record ids and reference ids, which denote extraction instances.
package fieldscope

import (
	"fmt"
	"time"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/assemble"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/extract"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/geo"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/ident"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/segment"
)

// Engine is the extraction pipeline facade: segmentation, per-unit
// field extraction and status classification, then record assembly.
// An Engine is read-only after construction and safe for concurrent
// use.
type Engine struct {
	lex      *lexicon.Lexicon
	clock    ident.Clock
	ids      ident.Generator
	resolver geo.Resolver
}

// Options configures an Engine. Zero-value fields get defaults: the
// built-in lexicon, the system clock, a ULID generator, and a static
// resolver over the lexicon's location coordinates.
type Options struct {
	Lexicon  *lexicon.Lexicon
	Clock    ident.Clock
	IDs      ident.Generator
	Resolver geo.Resolver
}

// New creates an Engine. An invalid lexicon is a systemic fault and
// fails construction; no per-unit recovery is possible from a corrupt
// vocabulary table.
func New(opts Options) (*Engine, error) {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("fieldscope: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = ident.SystemClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = ident.NewULIDGenerator()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = geo.NewStaticResolver(lex.Locations)
	}

	return &Engine{lex: lex, clock: clock, ids: ids, resolver: resolver}, nil
}

// Metadata is the optional context accompanying a transcription.
type Metadata struct {
	Title      string
	RecordedAt time.Time
	Location   string
}

// Input is one extraction request: the raw transcription text plus
// optional metadata. The engine never mutates it.
type Input struct {
	Text     string
	Metadata Metadata
}

// ReasonNoQualifyingUnits marks a run that produced zero records
// because no paragraph survived segmentation. Callers render this as
// "nothing extracted", distinct from a failure.
const ReasonNoQualifyingUnits = "no-qualifying-units"

// Diagnostic reports one skipped unit: its sequence index and cause.
type Diagnostic struct {
	UnitIndex int
	Err       error
}

// Result is the aggregate outcome of one pipeline run. Records is
// never nil; Reason is set only when Records is empty; Diagnostics
// lists units skipped by per-unit faults.
type Result struct {
	Records     []record.LogRecord
	Reason      string
	Diagnostics []Diagnostic
}

// Extract runs the full pipeline over one transcription. Empty or
// signal-free input is a normal outcome, reported via Reason, never an
// error. A fault in one unit (including an extractor panic) skips that
// unit with a diagnostic and the run continues; partial success is the
// normal case.
func (e *Engine) Extract(in Input) Result {
	res := Result{Records: []record.LogRecord{}}

	units := segment.Split(in.Text)
	if len(units) == 0 {
		res.Reason = ReasonNoQualifyingUnits
		return res
	}

	base := in.Metadata.RecordedAt
	if base.IsZero() {
		base = e.clock.Now()
	}

	asm := assemble.New(assemble.Params{
		Base:            base,
		DefaultLocation: in.Metadata.Location,
		IDs:             e.ids,
		Resolver:        e.resolver,
	})

	for _, u := range units {
		rec, err := e.extractUnit(asm, u)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{UnitIndex: u.Index, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}

	if len(res.Records) == 0 {
		res.Reason = ReasonNoQualifyingUnits
	}
	return res
}

// extractUnit runs every field extractor over one unit and assembles
// the record. Extractor panics are converted to per-unit errors so a
// single pathological paragraph cannot abort the run.
func (e *Engine) extractUnit(asm *assemble.Assembler, u segment.Unit) (rec record.LogRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract unit %d: %v", u.Index, r)
		}
	}()

	var f assemble.Fields
	f.Location, f.LocationFound = extract.Location(u.Text, e.lex.Locations)
	f.Category, f.ActivityType = extract.Activity(u.Text, u.Index, e.lex.Activities)
	f.Personnel, f.PersonnelFound = extract.Entity(u.Text, e.lex.Personnel)
	f.Equipment, f.EquipmentFound = extract.Entity(u.Text, e.lex.Equipment)
	f.Material, f.MaterialFound = extract.Entity(u.Text, e.lex.Materials)
	f.Measurement, _ = extract.Measurement(u.Text, e.lex.Units)
	f.Date, f.DateFound = extract.Date(u.Text)
	f.Status = extract.Status(u.Text, e.lex.Statuses)

	return asm.Record(u, f)
}
