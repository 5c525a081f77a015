package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(
	`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|` +
		`aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?` +
		`\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Date finds an explicit month-name date mention ("Mar 3rd, 2023",
// "January 15 2024") and parses it to a UTC midnight instant. Returns
// false on no mention or an impossible calendar date; the assembler
// then falls back to sequential timestamp derivation.
func Date(unit string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(unit)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := monthsByPrefix[strings.ToLower(m[1])[:3]]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 to Mar 2; reject such mentions.
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
