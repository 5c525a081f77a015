package extract

import (
	"testing"
	"time"
)

func TestDateFormats(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"Pump installed on Mar 3rd, 2023 at the wellhead.", time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"Survey completed January 15 2024 before the thaw.", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Shipment due September 1st, 2025.", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"Inspection held on Dec 21, 2022.", time.Date(2022, 12, 21, 0, 0, 0, 0, time.UTC)},
		{"Blast scheduled for apr 2nd 2024 at dawn.", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := Date(tc.text)
		if !ok {
			t.Errorf("%q: expected a date", tc.text)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestDateNoMention(t *testing.T) {
	for _, text := range []string{
		"Crew poured concrete at the north footing.",
		"Completed on 2023-03-03.", // numeric dates are not month-name mentions
		"May the schedule hold.",   // month word without day and year
	} {
		if got, ok := Date(text); ok {
			t.Errorf("%q: unexpected date %v", text, got)
		}
	}
}

func TestDateRejectsImpossibleDay(t *testing.T) {
	if _, ok := Date("Filed on Feb 30th, 2024 by the office."); ok {
		t.Error("Feb 30 should not parse")
	}
	if _, ok := Date("Filed on Jan 0 2024 by the office."); ok {
		t.Error("day zero should not parse")
	}
}

func TestDateFirstMentionWins(t *testing.T) {
	got, ok := Date("Started Mar 3 2023, finished Mar 5 2023.")
	if !ok {
		t.Fatal("expected a date")
	}
	if !got.Equal(time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v, want the first mention", got)
	}
}
