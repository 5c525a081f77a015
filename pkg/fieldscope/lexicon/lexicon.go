package lexicon

import (
	"fmt"
	"strings"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/internalerr"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Lexicon holds the domain vocabulary the field extractors match
// against. It is pure data: ordered tables whose declaration order is
// the first-match-wins priority policy. A Lexicon is read-only after
// construction and safe to share across concurrent extractions.
type Lexicon struct {
	// Locations are known site names, matched as exact substrings in
	// table order. Entries may carry coordinates for geo resolution.
	Locations []Location

	// Activities map categories to trigger keywords. Categories are
	// tried in declaration order; within a category, keywords are tried
	// in declaration order. Keywords are lowercase stems matched
	// case-insensitively ("install" matches "installed").
	Activities []ActivityClass

	// Personnel, Equipment and Materials are flat type-word lists,
	// scanned in order with case-insensitive substring matching.
	Personnel []string
	Equipment []string
	Materials []string

	// Units is the closed unit-of-measure vocabulary for the
	// measurement extractor.
	Units []string

	// Statuses are ordered classification rules. The first rule whose
	// marker appears in a unit wins; a unit matching none defaults to
	// completed. Rule order is the fixed precedence policy, not the
	// marker's position in the text.
	Statuses []StatusRule
}

// Location is one known site name, optionally with coordinates.
type Location struct {
	Name   string
	Coords *record.Coordinates
}

// ActivityClass binds a category to its trigger keywords.
type ActivityClass struct {
	Category record.Category
	Keywords []string
}

// StatusRule binds a lifecycle status to its marker phrases.
type StatusRule struct {
	Status  record.Status
	Markers []string
}

// Validate checks the lexicon for systemic faults: empty tables, blank
// entries, or unknown enum values. A lexicon failing validation is a
// hard error for the whole engine, never a per-unit diagnostic.
func (l *Lexicon) Validate() error {
	if len(l.Locations) == 0 {
		return fmt.Errorf("%w: no locations", internalerr.ErrInvalidLexicon)
	}
	for _, loc := range l.Locations {
		if strings.TrimSpace(loc.Name) == "" {
			return fmt.Errorf("%w: blank location name", internalerr.ErrInvalidLexicon)
		}
	}

	if len(l.Activities) == 0 {
		return fmt.Errorf("%w: no activity classes", internalerr.ErrInvalidLexicon)
	}
	for _, class := range l.Activities {
		if !class.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", internalerr.ErrInvalidLexicon, class.Category)
		}
		if len(class.Keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", internalerr.ErrInvalidLexicon, class.Category)
		}
		for _, kw := range class.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: category %q has a blank keyword", internalerr.ErrInvalidLexicon, class.Category)
			}
		}
	}

	for name, words := range map[string][]string{
		"personnel": l.Personnel,
		"equipment": l.Equipment,
		"materials": l.Materials,
		"units":     l.Units,
	} {
		if len(words) == 0 {
			return fmt.Errorf("%w: no %s entries", internalerr.ErrInvalidLexicon, name)
		}
		for _, w := range words {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("%w: blank %s entry", internalerr.ErrInvalidLexicon, name)
			}
		}
	}

	if len(l.Statuses) == 0 {
		return fmt.Errorf("%w: no status rules", internalerr.ErrInvalidLexicon)
	}
	for _, rule := range l.Statuses {
		if !rule.Status.Valid() {
			return fmt.Errorf("%w: unknown status %q", internalerr.ErrInvalidLexicon, rule.Status)
		}
		if len(rule.Markers) == 0 {
			return fmt.Errorf("%w: status %q has no markers", internalerr.ErrInvalidLexicon, rule.Status)
		}
		for _, m := range rule.Markers {
			if strings.TrimSpace(m) == "" {
				return fmt.Errorf("%w: status %q has a blank marker", internalerr.ErrInvalidLexicon, rule.Status)
			}
		}
	}

	return nil
}
