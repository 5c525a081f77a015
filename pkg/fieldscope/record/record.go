package record

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category classifies the kind of work a log record describes.
type Category string

const (
	CategoryInstallation   Category = "Installation"
	CategoryMaintenance    Category = "Maintenance"
	CategoryMonitoring     Category = "Monitoring"
	CategoryConstruction   Category = "Construction"
	CategoryTransportation Category = "Transportation"
	CategoryExtraction     Category = "Extraction"
	CategoryProcessing     Category = "Processing"
	CategoryUnspecified    Category = "Unspecified"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategoryInstallation,
	CategoryMaintenance,
	CategoryMonitoring,
	CategoryConstruction,
	CategoryTransportation,
	CategoryExtraction,
	CategoryProcessing,
	CategoryUnspecified,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of the activity a record describes.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
	StatusDelayed    Status = "delayed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status.
var Statuses = []Status{
	StatusCompleted,
	StatusInProgress,
	StatusPlanned,
	StatusDelayed,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Sentinel values used when extraction finds nothing. Downstream
// consumers rely on these being non-empty, so fields are never null.
const (
	UnknownLocation      = "Unknown Location"
	UnspecifiedPersonnel = "Unspecified Personnel"
	UnspecifiedEquipment = "Unspecified Equipment"
	UnspecifiedMaterial  = "Unspecified Material"
)

// Coordinates is an optional geo pair resolved from a known location name.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LogRecord is the engine's sole output type: one typed, queryable
// activity log entry extracted from a single paragraph of transcription
// text. Every non-optional field carries either a genuine extraction or
// a sentinel; Measurement may be empty and Coordinates may be absent.
type LogRecord struct {
	ID               string       `json:"id"`
	Timestamp        time.Time    `json:"timestamp"`
	Location         string       `json:"location"`
	ActivityCategory Category     `json:"activityCategory"`
	ActivityType     string       `json:"activityType"`
	Equipment        string       `json:"equipment"`
	Personnel        string       `json:"personnel"`
	Material         string       `json:"material"`
	Measurement      string       `json:"measurement"`
	Status           Status       `json:"status"`
	Notes            string       `json:"notes"`
	ReferenceID      string       `json:"referenceId"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
}

// Validate checks that every required field is populated and every
// enumerated field holds a known value.
func (r *LogRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("record id is required")
	}
	if r.Timestamp.IsZero() {
		return errors.New("record timestamp is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("record location is required")
	}
	if !r.ActivityCategory.Valid() {
		return fmt.Errorf("invalid activity category %q", r.ActivityCategory)
	}
	if strings.TrimSpace(r.ActivityType) == "" {
		return errors.New("record activity type is required")
	}
	if strings.TrimSpace(r.Equipment) == "" {
		return errors.New("record equipment is required")
	}
	if strings.TrimSpace(r.Personnel) == "" {
		return errors.New("record personnel is required")
	}
	if strings.TrimSpace(r.Material) == "" {
		return errors.New("record material is required")
	}
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if strings.TrimSpace(r.Notes) == "" {
		return errors.New("record notes are required")
	}
	if strings.TrimSpace(r.ReferenceID) == "" {
		return errors.New("record reference id is required")
	}
	return nil
}
