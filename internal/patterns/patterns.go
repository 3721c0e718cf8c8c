// Package patterns holds the compiled pattern matchers shared by the factor
// evaluators. Each matcher has a small documented grammar so it can be tested
// in isolation instead of living as an ad hoc inline regex.
package patterns

import "regexp"

var (
	// quantityLimited grammar: digits, an inventory noun, then a scarcity
	// suffix. Examples: "5 seats left", "only 20 units remaining",
	// "3 spots available".
	quantityLimited = regexp.MustCompile(`(?i)\b\d+\s*(?:slots?|seats?|spots?|units?|copies|licenses?)\s+(?:left|remaining|limited|available)\b`)

	// timeLimited grammar: digits then an hour/day unit, with an optional
	// urgency qualifier. Examples: "48 hours", "3 days left", "24 hours only".
	timeLimited = regexp.MustCompile(`(?i)\b\d+\s*(?:hours?|days?)(?:\s+(?:left|only|remaining))?\b`)

	// statistic grammar: digits (thousands separators and a trailing + are
	// allowed) then a people-count, percent, or multiplier suffix.
	// Examples: "10,000+ customers", "97%", "500 users", "10x".
	statistic = regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s*(?:%|percent\b|people\b|users\b|customers\b|members\b|reviews\b|x\b)`)

	// quantifiedBenefit grammar: a percent figure, a multiplier, or a
	// currency amount. Examples: "saves 30%", "2x faster", "$1,200 back".
	quantifiedBenefit = regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d+)?\s*(?:%|percent\b|x\b)|[$€£]\s?\d[\d,]*`)
)

// MatchesQuantityLimit reports whether text contains a quantity-limited
// scarcity claim.
func MatchesQuantityLimit(text string) bool {
	return quantityLimited.MatchString(text)
}

// MatchesTimeLimit reports whether text contains a time-limited claim.
func MatchesTimeLimit(text string) bool {
	return timeLimited.MatchString(text)
}

// MatchesStatistic reports whether text contains a usage or outcome
// statistic.
func MatchesStatistic(text string) bool {
	return statistic.MatchString(text)
}

// MatchesQuantifiedBenefit reports whether text quantifies a benefit as a
// percentage, multiplier, or currency amount.
func MatchesQuantifiedBenefit(text string) bool {
	return quantifiedBenefit.MatchString(text)
}
