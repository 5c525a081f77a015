package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinUnitLength is the shortest paragraph, in characters, that is kept
// as a candidate unit. Shorter fragments carry too little signal to
// extract reliable fields and are silently dropped.
const MinUnitLength = 20

// Unit is one paragraph-level slice of the raw transcription text.
// Index is the unit's position among the surviving (post-filter)
// paragraphs, not its position in the raw text.
type Unit struct {
	Index int
	Text  string
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Split breaks raw text on runs of line breaks, trims each paragraph,
// and drops paragraphs shorter than MinUnitLength. An input with no
// qualifying paragraphs yields an empty slice, never an error.
func Split(text string) []Unit {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var units []Unit
	for _, part := range lineBreaks.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) < MinUnitLength {
			continue
		}
		units = append(units, Unit{Index: len(units), Text: part})
	}
	return units
}
