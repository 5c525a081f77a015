package extract

import (
	"strings"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
)

// Status classifies the unit's lifecycle state by ordered keyword
// rules: the first rule with a marker present in the lowercased unit
// wins, regardless of where in the text the marker appears. A unit
// matching no rule is completed. Rule order is the fixed precedence
// policy; a unit carrying both "planned" and "delayed" language
// resolves by rule order, not text position.
func Status(unit string, rules []lexicon.StatusRule) record.Status {
	lower := strings.ToLower(unit)
	for _, rule := range rules {
		for _, marker := range rule.Markers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				return rule.Status
			}
		}
	}
	return record.StatusCompleted
}
