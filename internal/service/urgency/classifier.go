package urgency

import (
	"strings"

	"github.com/Anurag07-07/Resculink/internal/domain"
)

// Keyword sets checked in priority order: critical > high > medium.
// No scoring, no stemming, no negation handling; first matching set wins.
var (
	criticalKeywords = []string{
		"trapped", "bleeding", "unconscious", "dying", "fire", "flood",
		"heart attack", "stroke", "emergency", "critical", "severe injury",
	}
	highKeywords = []string{
		"injured", "broken", "pain", "no food", "no water", "baby",
		"child", "pregnant", "elderly", "sick", "infection",
	}
	mediumKeywords = []string{
		"lost", "stuck", "cold", "wet", "hungry", "thirsty",
		"medicine", "shelter needed",
	}
)

// Classify maps free text to an urgency tier by substring containment.
// Deterministic and side-effect free; callers pass the concatenation of a
// request's title and description.
func Classify(text string) domain.Urgency {
	lower := strings.ToLower(text)

	if containsAny(lower, criticalKeywords) {
		return domain.UrgencyCritical
	}
	if containsAny(lower, highKeywords) {
		return domain.UrgencyHigh
	}
	if containsAny(lower, mediumKeywords) {
		return domain.UrgencyMedium
	}
	return domain.UrgencyLow
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
