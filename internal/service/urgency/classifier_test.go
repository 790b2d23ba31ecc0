package urgency

import (
	"testing"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPriorityOrder(t *testing.T) {
	// A critical keyword wins even when high/medium keywords are present.
	got := Classify("Trapped under rubble, injured and hungry")
	assert.Equal(t, domain.UrgencyCritical, got)

	got = Classify("child is sick and we are cold")
	assert.Equal(t, domain.UrgencyHigh, got)
}

func TestClassifyTiers(t *testing.T) {
	cases := []struct {
		text string
		want domain.Urgency
	}{
		{"woman unconscious, not breathing", domain.UrgencyCritical},
		{"HOUSE ON FIRE", domain.UrgencyCritical},
		{"pregnant woman needs transport", domain.UrgencyHigh},
		{"no food for three days", domain.UrgencyHigh},
		{"need medicine", domain.UrgencyMedium},
		{"we are stuck on the roof", domain.UrgencyMedium},
		{"just checking in", domain.UrgencyLow},
		{"", domain.UrgencyLow},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.text), "text: %q", tc.text)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("BLEEDING badly"), Classify("bleeding badly"))
}
