package lexicon

import "github.com/fieldscope/fieldscope/pkg/fieldscope/record"

// Default returns the built-in vocabulary. Deployments with their own
// site names and equipment fleets load a YAML lexicon instead (see the
// config package); the defaults keep the engine usable out of the box.
func Default() *Lexicon {
	return &Lexicon{
		Locations: []Location{
			{Name: "Sanchez Site", Coords: &record.Coordinates{Lat: 28.4612, Lng: -99.2103}},
			{Name: "North Ridge Quarry", Coords: &record.Coordinates{Lat: 31.0847, Lng: -97.4621}},
			{Name: "Harbor Terminal", Coords: &record.Coordinates{Lat: 29.7355, Lng: -95.0892}},
			{Name: "Riverside Depot", Coords: &record.Coordinates{Lat: 30.2241, Lng: -97.7568}},
			{Name: "Cedar Valley Yard"},
			{Name: "Eastgate Substation"},
			{Name: "Mesa Verde Facility"},
			{Name: "Willow Creek Crossing"},
		},
		Activities: []ActivityClass{
			{Category: record.CategoryInstallation, Keywords: []string{"install", "mounting", "erect", "assembl", "commission"}},
			{Category: record.CategoryMaintenance, Keywords: []string{"maintenance", "repair", "servic", "overhaul", "lubricat", "replace"}},
			{Category: record.CategoryMonitoring, Keywords: []string{"monitor", "inspect", "survey", "observ", "audit"}},
			{Category: record.CategoryConstruction, Keywords: []string{"construct", "build", "pour", "formwork", "pave"}},
			{Category: record.CategoryTransportation, Keywords: []string{"transport", "haul", "deliver", "shipment", "convoy"}},
			{Category: record.CategoryExtraction, Keywords: []string{"extract", "drill", "blast", "mining", "quarry"}},
			{Category: record.CategoryProcessing, Keywords: []string{"process", "refin", "crush", "screen", "wash"}},
		},
		Personnel: []string{
			"Engineer", "Technician", "Operator", "Foreman", "Supervisor",
			"Electrician", "Welder", "Surveyor", "Inspector", "Driver",
			"Crew", "Laborer",
		},
		Equipment: []string{
			"Excavator", "Crane", "Bulldozer", "Pump", "Generator",
			"Compressor", "Conveyor", "Drill", "Truck", "Forklift",
			"Mixer", "Scaffold", "Grader",
		},
		Materials: []string{
			"Steel", "Concrete", "Gravel", "Sand", "Cement",
			"Timber", "Asphalt", "Rebar", "Aggregate", "Copper",
		},
		Units: []string{
			"meters", "meter", "m",
			"kilograms", "kilogram", "kg",
			"liters", "liter", "l",
			"feet", "foot", "ft",
			"gallons", "gallon", "gal",
			"psi", "mph",
			"tons", "ton", "t",
		},
		Statuses: []StatusRule{
			{Status: record.StatusInProgress, Markers: []string{"in progress", "ongoing"}},
			{Status: record.StatusPlanned, Markers: []string{"plan", "schedule", "will be"}},
			{Status: record.StatusDelayed, Markers: []string{"delay", "postpone"}},
			{Status: record.StatusCancelled, Markers: []string{"cancel", "abort"}},
		},
	}
}
