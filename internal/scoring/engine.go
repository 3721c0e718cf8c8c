// Package scoring implements the conversion-scoring engine: six factor
// evaluators over surface text features, per-channel weighting, performance
// predictions, and remediation suggestions. Everything is deterministic rule
// evaluation; there is no I/O and no state shared across requests beyond
// immutable tables, so an Engine is safe for concurrent use.
package scoring

import (
	"math"
	"strings"

	"github.com/dotcommander/copyscore/internal/baseline"
	"github.com/dotcommander/copyscore/internal/lexicon"
	"github.com/dotcommander/copyscore/internal/types"
)

// Factor base scores. An evaluator that matches no signals returns its base.
const (
	baseEmotionalAppeal  = 50
	baseUrgency          = 30
	baseSocialProof      = 40
	baseValueProposition = 45
	baseCallToAction     = 35
	baseTrustBuilding    = 40
)

// referenceScore is the composite treated as "good". Predictions scale
// linearly against it with no upper bound, so a composite of 100 projects
// ~33% above baseline. Set Options.CTRCap to bound the CTR estimate.
const referenceScore = 75

// defaultValuePerConversion is the revenue attributed to one conversion when
// the caller does not configure one.
const defaultValuePerConversion = 3000

// Options tune an Engine. The zero value selects the built-in weight table
// and default conversion value, with no CTR ceiling.
type Options struct {
	Weights            map[types.ContentType]WeightVector
	ValuePerConversion float64
	CTRCap             float64 // 0 disables the ceiling
}

// Engine scores content. Construct with New; the zero value is not usable.
type Engine struct {
	lex                *lexicon.Lexicon
	weights            map[types.ContentType]WeightVector
	valuePerConversion float64
	ctrCap             float64
}

// New creates an Engine. A nil lexicon selects the built-in defaults.
func New(lex *lexicon.Lexicon, opts Options) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	weights := opts.Weights
	if weights == nil {
		weights = defaultWeights
	}
	value := opts.ValuePerConversion
	if value <= 0 {
		value = defaultValuePerConversion
	}
	return &Engine{
		lex:                lex,
		weights:            weights,
		valuePerConversion: value,
		ctrCap:             opts.CTRCap,
	}
}

// Score runs the full pipeline for one request: factor evaluation, weighted
// aggregation, predictions, and suggestions. It never fails; empty content
// yields every factor's base score.
func (e *Engine) Score(req Request) Report {
	lower := strings.ToLower(req.Content)

	var details []SignalMetric
	collect := func(score int, metrics []SignalMetric) int {
		details = append(details, metrics...)
		return score
	}

	factors := FactorScores{
		EmotionalAppeal:  collect(e.scoreEmotionalAppeal(req.Content, lower)),
		Urgency:          collect(e.scoreUrgency(lower)),
		SocialProof:      collect(e.scoreSocialProof(lower)),
		ValueProposition: collect(e.scoreValueProposition(lower, req.ContentType)),
		CallToAction:     collect(e.scoreCallToAction(lower, req.ContentType, req.Product)),
		TrustBuilding:    collect(e.scoreTrustBuilding(lower)),
	}

	composite := e.composite(req.ContentType, factors)

	return Report{
		ConversionScore: composite,
		Tier:            TierFromScore(composite),
		Factors:         factors,
		Predictions:     e.predict(req.ContentType, composite),
		Suggestions:     e.suggest(req, factors),
		Details:         details,
	}
}

// weightsFor resolves the engine's weight vector for ct, falling back to the
// blog vector for unrecognized labels.
func (e *Engine) weightsFor(ct types.ContentType) WeightVector {
	if w, ok := e.weights[ct]; ok {
		return w
	}
	return e.weights[types.ContentTypeBlog]
}

// composite is the weighted sum of the six factor scores, rounded to the
// nearest integer.
func (e *Engine) composite(ct types.ContentType, f FactorScores) int {
	w := e.weightsFor(ct)
	sum := float64(f.EmotionalAppeal)*w.EmotionalAppeal +
		float64(f.Urgency)*w.Urgency +
		float64(f.SocialProof)*w.SocialProof +
		float64(f.ValueProposition)*w.ValueProposition +
		float64(f.CallToAction)*w.CallToAction +
		float64(f.TrustBuilding)*w.TrustBuilding
	return int(math.Round(sum))
}

// predict derives performance estimates by scaling the content type's
// baseline by composite/referenceScore.
func (e *Engine) predict(ct types.ContentType, composite int) Predictions {
	base := baseline.For(ct)
	multiplier := float64(composite) / referenceScore

	ctr := round2(base.CTR * multiplier)
	if e.ctrCap > 0 && ctr > e.ctrCap {
		ctr = e.ctrCap
	}

	return Predictions{
		EstimatedCTR:            ctr,
		EstimatedConversionRate: round2(base.Conversion * multiplier),
		RevenueProjection:       int(math.Round(base.Conversion * multiplier * e.valuePerConversion)),
	}
}
