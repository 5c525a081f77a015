// Package extract implements the per-field extraction functions. Each
// extractor is a pure function over one unit of text: it scans the unit
// against lexicon tables or patterns and reports a best-guess value plus
// whether anything matched. Fallback and sentinel handling belongs to
// the assembler, not to the extractors.
//
// All extractors are independent and order-insensitive: running them in
// any order over the same unit yields the same record.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Location returns the first known location name appearing in the unit,
// in table order. Table order is the deliberate priority policy when a
// unit mentions more than one site.
func Location(unit string, locs []lexicon.Location) (string, bool) {
	for _, loc := range locs {
		if strings.Contains(unit, loc.Name) {
			return loc.Name, true
		}
	}
	return "", false
}

// Activity classifies the unit into a category and derives a short
// type phrase. Categories are tried in table order; within a category,
// keywords in declaration order; the first keyword found in the unit
// wins both. The type phrase is the keyword plus up to three following
// words as they appear in the unit, or the title-cased keyword when
// that capture fails.
//
// When no category matches, the category is Unspecified and the type is
// the unit's first sentence if its length falls in [10,100) characters,
// else "Activity N" with the 1-based unit index.
func Activity(unit string, unitIndex int, classes []lexicon.ActivityClass) (record.Category, string) {
	lower := strings.ToLower(unit)
	for _, class := range classes {
		for _, kw := range class.Keywords {
			k := strings.ToLower(kw)
			if !strings.Contains(lower, k) {
				continue
			}
			if phrase := keywordPhrase(unit, k); phrase != "" {
				return class.Category, phrase
			}
			return class.Category, titleCase(k)
		}
	}
	return record.CategoryUnspecified, fallbackType(unit, unitIndex)
}

// Entity scans the given type-word list in order and returns the first
// word found in the unit, extended with one preceding qualifier word
// when the pattern captures one ("Senior Engineer"). Personnel,
// equipment and material extraction all share this shape.
func Entity(unit string, words []string) (string, bool) {
	lower := strings.ToLower(unit)
	for _, w := range words {
		if !strings.Contains(lower, strings.ToLower(w)) {
			continue
		}
		if phrase := qualifiedPhrase(unit, w); phrase != "" {
			return phrase, true
		}
		return w, true
	}
	return "", false
}

const wordRunes = `[\p{L}\p{N}-]`

// keywordPhrase captures the keyword (with any suffix, so "install"
// covers "installed") plus up to three following words, preserving the
// unit's original casing.
func keywordPhrase(unit, keyword string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(keyword) + wordRunes + `*(?:\s+` + wordRunes + `+){0,3}`)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(re.FindString(unit))
}

// qualifiedPhrase captures an optional single word preceding the type
// word, preserving the unit's original casing.
func qualifiedPhrase(unit, word string) string {
	re, err := regexp.Compile(`(?i)(?:` + wordRunes + `+\s+)?` + regexp.QuoteMeta(word) + wordRunes + `*`)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(re.FindString(unit))
}

func fallbackType(unit string, unitIndex int) string {
	sentence := strings.TrimSpace(strings.SplitN(unit, ".", 2)[0])
	if n := utf8.RuneCountInString(sentence); n >= 10 && n < 100 {
		return sentence
	}
	return "Activity " + strconv.Itoa(unitIndex+1)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
