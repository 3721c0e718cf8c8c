package patterns

import "testing"

func TestMatchesQuantityLimit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"seats left", "only 5 seats left at this price", true},
		{"units remaining", "20 units remaining", true},
		{"spots available", "3 spots available", true},
		{"licenses limited", "100 licenses limited", true},
		{"no number", "a few seats left", false},
		{"no suffix", "we sold 5 seats", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuantityLimit(tt.text); got != tt.want {
				t.Errorf("MatchesQuantityLimit(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesTimeLimit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"hours", "the offer ends in 48 hours", true},
		{"days left", "3 days left", true},
		{"single day", "1 day", true},
		{"hours only", "24 hours only", true},
		{"no number", "a few days ago", false},
		{"bare unit", "the hour is late", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesTimeLimit(tt.text); got != tt.want {
				t.Errorf("MatchesTimeLimit(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesStatistic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"customer count with separator", "10,000+ customers already switched", true},
		{"percent", "97% satisfaction", true},
		{"users", "500 users signed up last week", true},
		{"multiplier", "grew 10x in a year", true},
		{"reviews", "2,341 reviews", true},
		{"no suffix", "version 42 shipped", false},
		{"no number", "trusted by many people", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesStatistic(tt.text); got != tt.want {
				t.Errorf("MatchesStatistic(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesQuantifiedBenefit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"percent saving", "saves you 30% every month", true},
		{"multiplier", "2x faster onboarding", true},
		{"dollar amount", "get $1,200 back", true},
		{"euro amount", "worth €500", true},
		{"decimal percent", "a 12.5% improvement", true},
		{"unquantified", "great savings all around", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuantifiedBenefit(tt.text); got != tt.want {
				t.Errorf("MatchesQuantifiedBenefit(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
