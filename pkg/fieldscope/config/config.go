package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/internalerr"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// LexiconFile is the YAML shape of an externally maintained vocabulary.
// Table order in the file is the first-match-wins priority order, so
// every table is a sequence, not a map.
//
// Expected format:
//
//	locations:
//	  - name: Sanchez Site
//	    lat: 28.4612
//	    lng: -99.2103
//	activities:
//	  - category: Installation
//	    keywords: [install, mounting]
//	personnel: [Engineer, Technician]
//	equipment: [Excavator, Crane]
//	materials: [Steel, Concrete]
//	units: [meters, kg, psi]
//	statuses:
//	  - status: in-progress
//	    markers: ["in progress", "ongoing"]
type LexiconFile struct {
	Locations []struct {
		Name string   `yaml:"name"`
		Lat  *float64 `yaml:"lat"`
		Lng  *float64 `yaml:"lng"`
	} `yaml:"locations"`
	Activities []struct {
		Category string   `yaml:"category"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"activities"`
	Personnel []string `yaml:"personnel"`
	Equipment []string `yaml:"equipment"`
	Materials []string `yaml:"materials"`
	Units     []string `yaml:"units"`
	Statuses  []struct {
		Status  string   `yaml:"status"`
		Markers []string `yaml:"markers"`
	} `yaml:"statuses"`
}

// LoadLexicon reads and validates a YAML lexicon file. A location with
// only one of lat/lng is a configuration fault, not a silent omission.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var file LexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	lex, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Build converts the file shape into an engine lexicon and validates it.
func (f *LexiconFile) Build() (*lexicon.Lexicon, error) {
	lex := &lexicon.Lexicon{
		Personnel: f.Personnel,
		Equipment: f.Equipment,
		Materials: f.Materials,
		Units:     f.Units,
	}

	for _, loc := range f.Locations {
		entry := lexicon.Location{Name: loc.Name}
		switch {
		case loc.Lat != nil && loc.Lng != nil:
			entry.Coords = &record.Coordinates{Lat: *loc.Lat, Lng: *loc.Lng}
		case loc.Lat != nil || loc.Lng != nil:
			return nil, fmt.Errorf("%w: location %q has partial coordinates",
				internalerr.ErrInvalidConfig, loc.Name)
		}
		lex.Locations = append(lex.Locations, entry)
	}

	for _, class := range f.Activities {
		lex.Activities = append(lex.Activities, lexicon.ActivityClass{
			Category: record.Category(class.Category),
			Keywords: class.Keywords,
		})
	}

	for _, rule := range f.Statuses {
		lex.Statuses = append(lex.Statuses, lexicon.StatusRule{
			Status:  record.Status(rule.Status),
			Markers: rule.Markers,
		})
	}

	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}
