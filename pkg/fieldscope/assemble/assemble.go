// Package assemble combines per-unit extraction results with generated
// identifiers and the derived timestamp into complete log records.
// Missing extractions become sentinel values here, never errors: the
// assembler's contract is that an emitted record always has every
// required field populated.
package assemble

import (
	"strings"
	"time"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/geo"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/ident"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/segment"
)

// TimestampInterval spaces the sequential timestamp fallback: records
// without explicit date mentions form an evenly spaced, monotonically
// increasing timeline from the run's base time.
const TimestampInterval = 10 * time.Minute

// Fields carries every extractor's output for one unit. The Found
// flags distinguish a genuine extraction from an empty best guess.
type Fields struct {
	Location      string
	LocationFound bool

	Category     record.Category
	ActivityType string

	Personnel      string
	PersonnelFound bool
	Equipment      string
	EquipmentFound bool
	Material       string
	MaterialFound  bool

	Measurement string

	Date      time.Time
	DateFound bool

	Status record.Status
}

// Assembler builds records for one pipeline run. It holds the run's
// base time and metadata defaults, so one run's records share a stable
// reference-id time component.
type Assembler struct {
	base            time.Time
	defaultLocation string
	ids             ident.Generator
	resolver        geo.Resolver
}

// Params configures an Assembler.
type Params struct {
	// Base is the run's base time: the metadata recording date when
	// provided, else the injected clock's now.
	Base time.Time

	// DefaultLocation is the metadata default, used before the
	// Unknown Location sentinel.
	DefaultLocation string

	IDs ident.Generator

	// Resolver is optional; without it no record carries coordinates.
	Resolver geo.Resolver
}

// New creates an assembler for a single pipeline run.
func New(p Params) *Assembler {
	return &Assembler{
		base:            p.Base,
		defaultLocation: p.DefaultLocation,
		ids:             p.IDs,
		resolver:        p.Resolver,
	}
}

// Record assembles one complete log record, applying every fallback
// and sentinel rule, and validates it before emitting.
func (a *Assembler) Record(unit segment.Unit, f Fields) (record.LogRecord, error) {
	ts := f.Date
	if !f.DateFound {
		ts = a.base.Add(TimestampInterval * time.Duration(unit.Index))
	}

	location := f.Location
	if !f.LocationFound || strings.TrimSpace(location) == "" {
		location = a.defaultLocation
	}
	if strings.TrimSpace(location) == "" {
		location = record.UnknownLocation
	}

	category := f.Category
	if !category.Valid() {
		category = record.CategoryUnspecified
	}

	status := f.Status
	if !status.Valid() {
		status = record.StatusCompleted
	}

	rec := record.LogRecord{
		ID:               a.ids.NewID(),
		Timestamp:        ts,
		Location:         location,
		ActivityCategory: category,
		ActivityType:     f.ActivityType,
		Equipment:        fallback(f.Equipment, f.EquipmentFound, record.UnspecifiedEquipment),
		Personnel:        fallback(f.Personnel, f.PersonnelFound, record.UnspecifiedPersonnel),
		Material:         fallback(f.Material, f.MaterialFound, record.UnspecifiedMaterial),
		Measurement:      f.Measurement,
		Status:           status,
		Notes:            unit.Text,
		ReferenceID:      ident.Reference(a.base, unit.Index),
	}

	if a.resolver != nil {
		if c, ok := a.resolver.Resolve(rec.Location); ok {
			rec.Coordinates = &c
		}
	}

	if err := rec.Validate(); err != nil {
		return record.LogRecord{}, err
	}
	return rec, nil
}

func fallback(value string, found bool, sentinel string) string {
	if !found || strings.TrimSpace(value) == "" {
		return sentinel
	}
	return value
}
