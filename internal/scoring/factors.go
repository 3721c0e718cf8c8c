package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/copyscore/internal/patterns"
	"github.com/dotcommander/copyscore/internal/types"
)

// scoreEmotionalAppeal starts at 50 and rewards positive-sentiment keywords
// (case-sensitive, +8 each), pain-point keywords (+5 each), and a
// storytelling marker (+10 once).
func (e *Engine) scoreEmotionalAppeal(content, lower string) (int, []SignalMetric) {
	score := baseEmotionalAppeal

	positives := countDistinct(content, e.lex.Positive)
	score += positives * 8

	pains := countDistinct(lower, e.lex.PainPoints)
	score += pains * 5

	story := containsAny(lower, e.lex.Storytelling)
	if story {
		score += 10
	}

	metrics := []SignalMetric{
		{Factor: types.FactorEmotionalAppeal, Name: "positive keywords", Points: positives * 8, Hits: positives},
		{Factor: types.FactorEmotionalAppeal, Name: "pain-point keywords", Points: pains * 5, Hits: pains},
		{Factor: types.FactorEmotionalAppeal, Name: "storytelling marker", Points: boolPoints(story, 10), Hits: boolHits(story)},
	}
	return clampScore(score), metrics
}

// scoreUrgency starts at 30 and rewards urgency keywords (+15 each), a
// quantity-limited pattern (+20), and a time-limited pattern (+15).
func (e *Engine) scoreUrgency(lower string) (int, []SignalMetric) {
	score := baseUrgency

	keywords := countDistinct(lower, e.lex.Urgency)
	score += keywords * 15

	quantity := patterns.MatchesQuantityLimit(lower)
	if quantity {
		score += 20
	}
	timed := patterns.MatchesTimeLimit(lower)
	if timed {
		score += 15
	}

	metrics := []SignalMetric{
		{Factor: types.FactorUrgency, Name: "urgency keywords", Points: keywords * 15, Hits: keywords},
		{Factor: types.FactorUrgency, Name: "quantity-limited claim", Points: boolPoints(quantity, 20), Hits: boolHits(quantity)},
		{Factor: types.FactorUrgency, Name: "time-limited claim", Points: boolPoints(timed, 15), Hits: boolHits(timed)},
	}
	return clampScore(score), metrics
}

// scoreSocialProof starts at 40 and rewards testimonial/case-study markers
// (+20), a statistics pattern (+15), endorsement markers (+15), and rating
// markers (+10).
func (e *Engine) scoreSocialProof(lower string) (int, []SignalMetric) {
	score := baseSocialProof

	testimonial := containsAny(lower, e.lex.Testimonials)
	if testimonial {
		score += 20
	}
	stat := patterns.MatchesStatistic(lower)
	if stat {
		score += 15
	}
	endorsed := containsAny(lower, e.lex.Endorsements)
	if endorsed {
		score += 15
	}
	rated := containsAny(lower, e.lex.Ratings)
	if rated {
		score += 10
	}

	metrics := []SignalMetric{
		{Factor: types.FactorSocialProof, Name: "testimonial marker", Points: boolPoints(testimonial, 20), Hits: boolHits(testimonial)},
		{Factor: types.FactorSocialProof, Name: "usage statistic", Points: boolPoints(stat, 15), Hits: boolHits(stat)},
		{Factor: types.FactorSocialProof, Name: "endorsement marker", Points: boolPoints(endorsed, 15), Hits: boolHits(endorsed)},
		{Factor: types.FactorSocialProof, Name: "rating marker", Points: boolPoints(rated, 10), Hits: boolHits(rated)},
	}
	return clampScore(score), metrics
}

// scoreValueProposition starts at 45 and rewards benefit keywords (+8 each),
// a quantified-benefit pattern (+20), and a differentiation marker (+15).
// The content type is part of the evaluator contract but does not currently
// change the result.
func (e *Engine) scoreValueProposition(lower string, _ types.ContentType) (int, []SignalMetric) {
	score := baseValueProposition

	benefits := countDistinct(lower, e.lex.Benefits)
	score += benefits * 8

	quantified := patterns.MatchesQuantifiedBenefit(lower)
	if quantified {
		score += 20
	}
	different := containsAny(lower, e.lex.Differentiation)
	if different {
		score += 15
	}

	metrics := []SignalMetric{
		{Factor: types.FactorValueProposition, Name: "benefit keywords", Points: benefits * 8, Hits: benefits},
		{Factor: types.FactorValueProposition, Name: "quantified benefit", Points: boolPoints(quantified, 20), Hits: boolHits(quantified)},
		{Factor: types.FactorValueProposition, Name: "differentiation marker", Points: boolPoints(different, 15), Hits: boolHits(different)},
	}
	return clampScore(score), metrics
}

// scoreCallToAction starts at 35 and rewards distinct CTA phrases (+20
// each), the first matched phrase sitting in the last 30% of the text (+10),
// two or more phrases in an email (+10), and a closing product mention
// (+10, only when a product name was supplied).
func (e *Engine) scoreCallToAction(lower string, ct types.ContentType, product string) (int, []SignalMetric) {
	score := baseCallToAction

	matched := 0
	firstOffset := -1
	for _, phrase := range e.lex.CTAPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		matched++
		if firstOffset < 0 || idx < firstOffset {
			firstOffset = idx
		}
	}
	score += matched * 20

	closing := firstOffset >= 0 && inClosingPortion(lower, firstOffset)
	if closing {
		score += 10
	}

	emailMulti := ct == types.ContentTypeEmail && matched >= 2
	if emailMulti {
		score += 10
	}

	productClose := false
	if product != "" {
		p := strings.ToLower(product)
		idx := strings.LastIndex(lower, p)
		productClose = idx >= 0 && inClosingPortion(lower, idx)
		if productClose {
			score += 10
		}
	}

	metrics := []SignalMetric{
		{Factor: types.FactorCallToAction, Name: "CTA phrases", Points: matched * 20, Hits: matched},
		{Factor: types.FactorCallToAction, Name: "CTA near the end", Points: boolPoints(closing, 10), Hits: boolHits(closing)},
		{Factor: types.FactorCallToAction, Name: "multiple CTAs in email", Points: boolPoints(emailMulti, 10), Hits: boolHits(emailMulti)},
	}
	if product != "" {
		metrics = append(metrics, SignalMetric{
			Factor: types.FactorCallToAction,
			Name:   "closing product mention",
			Points: boolPoints(productClose, 10),
			Hits:   boolHits(productClose),
			Note:   fmt.Sprintf("product %q", product),
		})
	}
	return clampScore(score), metrics
}

// scoreTrustBuilding starts at 40 and rewards guarantee/support markers
// (+15), experience markers (+10), contact/company markers (+10), and
// certification markers (+10).
func (e *Engine) scoreTrustBuilding(lower string) (int, []SignalMetric) {
	score := baseTrustBuilding

	guarantee := containsAny(lower, e.lex.Guarantees)
	if guarantee {
		score += 15
	}
	experience := containsAny(lower, e.lex.Experience)
	if experience {
		score += 10
	}
	contact := containsAny(lower, e.lex.Contact)
	if contact {
		score += 10
	}
	certified := containsAny(lower, e.lex.Certifications)
	if certified {
		score += 10
	}

	metrics := []SignalMetric{
		{Factor: types.FactorTrustBuilding, Name: "guarantee marker", Points: boolPoints(guarantee, 15), Hits: boolHits(guarantee)},
		{Factor: types.FactorTrustBuilding, Name: "experience marker", Points: boolPoints(experience, 10), Hits: boolHits(experience)},
		{Factor: types.FactorTrustBuilding, Name: "contact marker", Points: boolPoints(contact, 10), Hits: boolHits(contact)},
		{Factor: types.FactorTrustBuilding, Name: "certification marker", Points: boolPoints(certified, 10), Hits: boolHits(certified)},
	}
	return clampScore(score), metrics
}

// inClosingPortion reports whether offset falls in the last 30% of text.
func inClosingPortion(text string, offset int) bool {
	if len(text) == 0 {
		return false
	}
	return float64(offset) >= float64(len(text))*0.7
}

func boolPoints(b bool, points int) int {
	if b {
		return points
	}
	return 0
}

func boolHits(b bool) int {
	if b {
		return 1
	}
	return 0
}
