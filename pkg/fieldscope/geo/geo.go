// Package geo resolves known location names to coordinates. Resolution
// is best-effort: a location without a table entry simply yields no
// coordinates, and the engine omits the field rather than guessing.
package geo

import (
	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Resolver maps a recognized location name to coordinates. A remote
// geocoding collaborator can satisfy this interface at the boundary;
// the engine only ever consults it for names the lexicon recognized.
type Resolver interface {
	Resolve(location string) (record.Coordinates, bool)
}

// StaticResolver answers from the coordinate entries of a lexicon's
// location table.
type StaticResolver struct {
	coords map[string]record.Coordinates
}

// NewStaticResolver indexes the locations that carry coordinates.
func NewStaticResolver(locs []lexicon.Location) *StaticResolver {
	coords := make(map[string]record.Coordinates, len(locs))
	for _, loc := range locs {
		if loc.Coords != nil {
			coords[loc.Name] = *loc.Coords
		}
	}
	return &StaticResolver{coords: coords}
}

func (r *StaticResolver) Resolve(location string) (record.Coordinates, bool) {
	c, ok := r.coords[location]
	return c, ok
}
