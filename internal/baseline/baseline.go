// Package baseline holds the per-channel reference rates that predictions
// scale from. The table is static and read-only; concurrent lookups are safe.
package baseline

import "github.com/dotcommander/copyscore/internal/types"

// Baseline is the reference click-through and conversion rate (both
// percentages) for a content type at the reference composite score.
type Baseline struct {
	CTR        float64 `json:"ctr"`
	Conversion float64 `json:"conversion"`
}

var table = map[types.ContentType]Baseline{
	types.ContentTypeBlog:        {CTR: 2.5, Conversion: 1.2},
	types.ContentTypeEmail:       {CTR: 18.0, Conversion: 2.5},
	types.ContentTypeSocial:      {CTR: 1.8, Conversion: 0.9},
	types.ContentTypeLandingPage: {CTR: 35.0, Conversion: 4.5},
	types.ContentTypeYouTube:     {CTR: 4.2, Conversion: 1.5},
}

// For returns the baseline for ct, falling back to the blog baseline for
// unrecognized labels.
func For(ct types.ContentType) Baseline {
	if b, ok := table[ct]; ok {
		return b
	}
	return table[types.ContentTypeBlog]
}

// Table returns a copy of the full baseline table for display.
func Table() map[types.ContentType]Baseline {
	out := make(map[types.ContentType]Baseline, len(table))
	for ct, b := range table {
		out[ct] = b
	}
	return out
}
