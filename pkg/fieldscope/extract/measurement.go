package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Measurement finds the first decimal number immediately followed by a
// unit-of-measure token from the closed unit vocabulary. The numeric
// value is normalized through a decimal parse (stripping artifacts like
// leading zeros) and joined with the lowercased unit token. Returns
// false when the unit carries no measurement.
func Measurement(unit string, units []string) (string, bool) {
	re, err := measurementPattern(units)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(unit)
	if m == nil {
		return "", false
	}

	value := m[1]
	var d apd.Decimal
	if _, _, err := d.SetString(value); err == nil {
		value = d.String()
	}
	return value + " " + strings.ToLower(m[2]), true
}

// measurementPattern builds the measurement regexp from the unit
// vocabulary. Longer tokens are tried first so "meters" beats "m".
func measurementPattern(units []string) (*regexp.Regexp, error) {
	sorted := make([]string, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, u := range sorted {
		quoted[i] = regexp.QuoteMeta(u)
	}

	return regexp.Compile(`(?i)\b(\d+(?:\.\d+)?)\s*(` + strings.Join(quoted, "|") + `)\b`)
}
