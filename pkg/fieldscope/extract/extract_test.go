package extract

import (
	"testing"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

func TestLocationFirstMatchWins(t *testing.T) {
	locs := []lexicon.Location{
		{Name: "Sanchez Site"},
		{Name: "Harbor Terminal"},
	}

	got, ok := Location("Convoy left Harbor Terminal for Sanchez Site.", locs)
	if !ok {
		t.Fatal("expected a location match")
	}
	// Table order, not text order, breaks the tie.
	if got != "Sanchez Site" {
		t.Errorf("got %q, want table-priority %q", got, "Sanchez Site")
	}
}

func TestLocationNoMatch(t *testing.T) {
	locs := []lexicon.Location{{Name: "Sanchez Site"}}
	if _, ok := Location("Work continued at the temporary camp today.", locs); ok {
		t.Error("unknown locations should not match")
	}
}

func TestLocationMatchIsExact(t *testing.T) {
	locs := []lexicon.Location{{Name: "Sanchez Site"}}
	if _, ok := Location("Crew reported from sanchez site this morning.", locs); ok {
		t.Error("location matching is exact-substring, not case-folded")
	}
}

func TestActivityKeywordPhrase(t *testing.T) {
	classes := lexicon.Default().Activities

	cat, typ := Activity("Engineer installed a new Pump at Sanchez Site.", 0, classes)
	if cat != record.CategoryInstallation {
		t.Errorf("category = %q, want Installation", cat)
	}
	if typ != "installed a new Pump" {
		t.Errorf("type = %q, want keyword plus following words", typ)
	}
}

func TestActivityCategoryOrderBeatsTextOrder(t *testing.T) {
	classes := []lexicon.ActivityClass{
		{Category: record.CategoryInstallation, Keywords: []string{"install"}},
		{Category: record.CategoryMaintenance, Keywords: []string{"repair"}},
	}

	// "repair" appears first in the text, but Installation is declared first.
	cat, _ := Activity("After the repair the crew install the guard rail.", 0, classes)
	if cat != record.CategoryInstallation {
		t.Errorf("category = %q, want declaration-order winner Installation", cat)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("install"); got != "Install" {
		t.Errorf("titleCase = %q", got)
	}
	if got := titleCase(""); got != "" {
		t.Errorf("titleCase empty = %q", got)
	}
}

func TestActivityUnspecifiedFirstSentence(t *testing.T) {
	cat, typ := Activity("Crews stood down for weather. Nothing else moved on site today.", 2, nil)
	if cat != record.CategoryUnspecified {
		t.Errorf("category = %q, want Unspecified", cat)
	}
	if typ != "Crews stood down for weather" {
		t.Errorf("type = %q, want first sentence", typ)
	}
}

func TestActivityUnspecifiedIndexFallback(t *testing.T) {
	// First sentence shorter than 10 characters: fall through to the
	// positional name, 1-based.
	cat, typ := Activity("Idle day. Everyone remained at the staging area until dusk.", 2, nil)
	if cat != record.CategoryUnspecified {
		t.Errorf("category = %q, want Unspecified", cat)
	}
	if typ != "Activity 3" {
		t.Errorf("type = %q, want Activity 3", typ)
	}
}

func TestActivityUnspecifiedLongSentenceFallsBack(t *testing.T) {
	long := "This opening sentence rambles on and on about site conditions and the weather and the schedule and keeps going past the cap."
	_, typ := Activity(long, 0, nil)
	if typ != "Activity 1" {
		t.Errorf("type = %q, want Activity 1 for a 100+ char first sentence", typ)
	}
}

func TestEntityQualifierCapture(t *testing.T) {
	words := []string{"Engineer", "Technician"}

	got, ok := Entity("The Senior Engineer signed off on the lift plan.", words)
	if !ok {
		t.Fatal("expected a personnel match")
	}
	if got != "Senior Engineer" {
		t.Errorf("got %q, want qualifier plus word", got)
	}
}

func TestEntityBareWordAtStart(t *testing.T) {
	got, ok := Entity("Engineer installed a new Pump.", []string{"Engineer"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "Engineer" {
		t.Errorf("got %q, want bare word when nothing precedes it", got)
	}
}

func TestEntityCaseInsensitive(t *testing.T) {
	got, ok := Entity("the crane operator reported a fault", []string{"Crane"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "the crane" {
		t.Errorf("got %q", got)
	}
}

func TestEntityFirstListEntryWins(t *testing.T) {
	got, ok := Entity("Excavator and Crane worked the east cut.", []string{"Crane", "Excavator"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "and Crane" {
		t.Errorf("got %q, want the list-priority word with its qualifier", got)
	}
}

func TestEntityNoMatch(t *testing.T) {
	if _, ok := Entity("Nothing notable happened on shift.", []string{"Excavator"}); ok {
		t.Error("expected no match")
	}
}
