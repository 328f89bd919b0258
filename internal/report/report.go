// Package report turns stance counts and ranked themes into the run's
// summary: three percentages that always total 100, a skew label, and a
// one-sentence plain-English read.
package report

import (
	"fmt"
	"strings"

	"tagpulse/internal/types"
)

// Skew labels the dominant stance direction across the classified set.
const (
	SkewPositive = "positive"
	SkewNegative = "negative"
	SkewMixed    = "mixed"
)

// Report is the aggregate result for a run.
type Report struct {
	Counts      types.Counts
	PositivePct int
	NegativePct int
	NeutralPct  int
	Skew        string
	Themes      []string
	Summary     string
}

// Build aggregates counts and ranked themes into a Report for a hashtag.
// Pure computation; there are no failure modes.
func Build(hashtag string, counts types.Counts, themes []string) Report {
	total := counts.Total()
	if total < 1 {
		total = 1 // keep the percentages defined for an empty set
	}

	// Integer division floors for non-negative counts. Neutral takes the
	// remainder so the three always sum to exactly 100.
	pos := 100 * counts.Positive / total
	neg := 100 * counts.Negative / total
	neu := 100 - pos - neg

	skew := SkewMixed
	switch {
	case counts.Negative > counts.Positive && counts.Negative > counts.Neutral:
		skew = SkewNegative
	case counts.Positive > counts.Negative && counts.Positive > counts.Neutral:
		skew = SkewPositive
	}

	themesPhrase := "mixed themes"
	if len(themes) > 0 {
		themesPhrase = strings.Join(themes, " and ")
	}

	summary := fmt.Sprintf(
		"On #%s, posts skew %s (%d%% negative, %d%% positive, %d%% neutral), with frequent mentions of %s.",
		hashtag, skew, neg, pos, neu, themesPhrase,
	)

	return Report{
		Counts:      counts,
		PositivePct: pos,
		NegativePct: neg,
		NeutralPct:  neu,
		Skew:        skew,
		Themes:      themes,
		Summary:     summary,
	}
}
