package scoring

import (
	"math"
	"strings"
)

// clampScore caps a factor score at 100. Evaluators only add to their base,
// so no lower bound is needed.
func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

// countDistinct counts how many terms occur in text at least once. Repeated
// occurrences of the same term count once. Matching is a plain substring
// check, so callers control case sensitivity by what they pass in.
func countDistinct(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// containsAny reports whether any term occurs in text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
