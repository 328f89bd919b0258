// Package classify assigns a coarse sentiment stance to post text.
//
// The score is a VADER compound polarity in [-1, 1], nudged by tariff-domain
// hint keywords before thresholding. Classification is a pure function of
// the text and the lexicon snapshot; the lexicon is embedded in the govader
// package, so the one-time setup in New performs no I/O.
package classify

import (
	"strings"

	"github.com/jonreiter/govader"

	"tagpulse/internal/types"
)

// Domain hint keywords, matched as lowercase substrings. A general polarity
// lexicon misses that e.g. "onshore" reads positive and "trade war" reads
// negative in tariff discourse; hits nudge the compound score by hintWeight.
var (
	positiveHints = []string{
		"protect", "protection", "protecting", "fair trade", "bring back jobs",
		"onshore", "reshore", "domestic", "manufacturing", "counter china",
		"stand up to china", "level playing field", "good", "win", "works",
	}
	negativeHints = []string{
		"inflation", "prices", "price hike", "cost", "costs", "tax on consumers",
		"trade war", "retaliation", "tariff war", "smoot", "hawley", "inefficient",
		"jobs lost", "hurts", "burden", "bad", "stupid",
	}
)

const (
	// hintWeight is added for a positive hint hit and subtracted for a
	// negative one. Both can apply to the same text. The adjusted score
	// is not clamped back into [-1, 1].
	hintWeight = 0.20

	// Stance thresholds on the adjusted compound score.
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Classifier scores post text for stance. Safe for reuse across an entire
// run; it holds no per-run mutable state.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New builds a classifier. This is the one-time lexicon setup; calling it
// again just builds another independent classifier over the same embedded
// lexicon.
func New() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify returns the stance for one text.
func (c *Classifier) Classify(text string) types.Stance {
	score := c.Score(text)
	switch {
	case score >= positiveThreshold:
		return types.StancePositive
	case score <= negativeThreshold:
		return types.StanceNegative
	default:
		return types.StanceNeutral
	}
}

// Score returns the hint-adjusted compound polarity for one text.
func (c *Classifier) Score(text string) float64 {
	compound := c.analyzer.PolarityScores(text).Compound

	low := strings.ToLower(text)
	if containsAny(low, positiveHints) {
		compound += hintWeight
	}
	if containsAny(low, negativeHints) {
		compound -= hintWeight
	}
	return compound
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
