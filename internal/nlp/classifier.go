package nlp

import "strings"

// Classifier scores normalized text against the fixed intent table.
// It is stateless and safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a new intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the best-matching intent and a confidence score in [0,1]
// for the given normalized text. Keywords found as substrings score one
// point, matching patterns score two. The highest-scoring intent wins; equal
// scores keep the intent declared first in the table. A total score of zero
// yields (IntentUnknown, 0.0). Classification never fails.
func (c *Classifier) Classify(normalized string) (Intent, float64) {
	if normalized == "" {
		return IntentUnknown, 0.0
	}

	best := IntentUnknown
	bestScore := 0
	bestMax := 0

	for _, def := range intentTable {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		for _, pat := range def.patterns {
			if pat.MatchString(normalized) {
				score += 2
			}
		}
		// Strict > keeps the first-declared intent on ties.
		if score > bestScore {
			best = def.intent
			bestScore = score
			bestMax = def.maxScore()
		}
	}

	if bestScore == 0 {
		return IntentUnknown, 0.0
	}

	confidence := float64(bestScore) / float64(bestMax)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return best, confidence
}
