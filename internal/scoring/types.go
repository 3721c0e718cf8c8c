package scoring

import "github.com/dotcommander/copyscore/internal/types"

// Request carries one piece of content through the scoring pipeline.
type Request struct {
	Content        string
	ContentType    types.ContentType
	TargetAudience string // part of the caller contract; not yet scored
	Product        string
}

// FactorScores holds the six persuasion-dimension sub-scores. Every field is
// independently clamped to [0,100].
type FactorScores struct {
	EmotionalAppeal  int `json:"emotionalAppeal"`
	Urgency          int `json:"urgency"`
	SocialProof      int `json:"socialProof"`
	ValueProposition int `json:"valueProposition"`
	CallToAction     int `json:"callToAction"`
	TrustBuilding    int `json:"trustBuilding"`
}

// Predictions are the derived performance estimates. CTR and conversion rate
// are percentages rounded to two decimals; revenue is a whole currency
// amount.
type Predictions struct {
	EstimatedCTR            float64 `json:"estimatedCtr"`
	EstimatedConversionRate float64 `json:"estimatedConversionRate"`
	RevenueProjection       int     `json:"revenueProjection"`
}

// SignalMetric records one heuristic signal's contribution to a factor score.
type SignalMetric struct {
	Factor string `json:"factor"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Hits   int    `json:"hits"`
	Note   string `json:"note,omitempty"`
}

// Report is the full scoring output for one request.
type Report struct {
	ConversionScore int            `json:"conversionScore"`
	Tier            string         `json:"tier"`
	Factors         FactorScores   `json:"factors"`
	Predictions     Predictions    `json:"predictions"`
	Suggestions     []string       `json:"suggestions"`
	Details         []SignalMetric `json:"details,omitempty"`
}

// TierFromScore maps a composite score to a letter tier.
func TierFromScore(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}
