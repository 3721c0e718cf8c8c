package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/dotcommander/copyscore/internal/types"
)

func TestScoreEmptyContent(t *testing.T) {
	e := testEngine()
	report := e.Score(Request{Content: "", ContentType: types.ContentTypeBlog})

	wantFactors := FactorScores{
		EmotionalAppeal:  50,
		Urgency:          30,
		SocialProof:      40,
		ValueProposition: 45,
		CallToAction:     35,
		TrustBuilding:    40,
	}
	if report.Factors != wantFactors {
		t.Errorf("factors = %+v, want bases %+v", report.Factors, wantFactors)
	}

	// Weighted sum of the bases under the blog vector is 41.75.
	if report.ConversionScore != 42 {
		t.Errorf("composite = %d, want 42", report.ConversionScore)
	}
	if report.Tier != "D" {
		t.Errorf("tier = %q, want D", report.Tier)
	}

	// All six factors sit below their thresholds, so all six messages fire;
	// blog has no content-type-specific rule.
	if len(report.Suggestions) != 6 {
		t.Errorf("got %d suggestions, want 6: %v", len(report.Suggestions), report.Suggestions)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	e := testEngine()
	req := Request{
		Content:     "An amazing course. 10,000+ users saw 30% improvement. Sign up now, only 5 seats left.",
		ContentType: types.ContentTypeEmail,
		Product:     "The Course",
	}
	first := e.Score(req)
	second := e.Score(req)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differed:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestFactorScoresIgnoreContentType(t *testing.T) {
	e := testEngine()
	text := "An amazing product. Case studies show 30% savings. Click here."

	blog := e.Score(Request{Content: text, ContentType: types.ContentTypeBlog})
	social := e.Score(Request{Content: text, ContentType: types.ContentTypeSocial})

	if blog.Factors != social.Factors {
		t.Errorf("factor scores differ across content types:\nblog:   %+v\nsocial: %+v", blog.Factors, social.Factors)
	}
	if blog.ConversionScore == social.ConversionScore {
		t.Logf("composites happen to match (%d); weight vectors differ so this is coincidental", blog.ConversionScore)
	}
	if blog.Predictions == social.Predictions {
		t.Error("predictions should differ across content types with different baselines")
	}
}

func TestScoreUnknownContentTypeFallsBackToBlog(t *testing.T) {
	e := testEngine()
	text := "An amazing product with proven results."

	unknown := e.Score(Request{Content: text, ContentType: types.ContentType("podcast")})
	blog := e.Score(Request{Content: text, ContentType: types.ContentTypeBlog})

	if unknown.ConversionScore != blog.ConversionScore {
		t.Errorf("composite = %d, want blog's %d", unknown.ConversionScore, blog.ConversionScore)
	}
	if unknown.Predictions != blog.Predictions {
		t.Errorf("predictions = %+v, want blog's %+v", unknown.Predictions, blog.Predictions)
	}
}

func TestPredictEmptyBlog(t *testing.T) {
	e := testEngine()
	report := e.Score(Request{Content: "", ContentType: types.ContentTypeBlog})

	// Multiplier 42/75 = 0.56 over the blog baseline (2.5% CTR, 1.2% conv),
	// with the default 3000 per-conversion value.
	if report.Predictions.EstimatedCTR != 1.4 {
		t.Errorf("estimated CTR = %v, want 1.4", report.Predictions.EstimatedCTR)
	}
	if report.Predictions.EstimatedConversionRate != 0.67 {
		t.Errorf("estimated conversion = %v, want 0.67", report.Predictions.EstimatedConversionRate)
	}
	if report.Predictions.RevenueProjection != 2016 {
		t.Errorf("revenue projection = %d, want 2016", report.Predictions.RevenueProjection)
	}
}

// Predictions scale linearly with the composite: doubling it doubles every
// estimate, modulo two-decimal rounding on the rates.
func TestPredictScalesLinearly(t *testing.T) {
	e := testEngine()

	half := e.predict(types.ContentTypeBlog, 50)
	full := e.predict(types.ContentTypeBlog, 100)

	if full.RevenueProjection != 2*half.RevenueProjection {
		t.Errorf("revenue %d is not double %d", full.RevenueProjection, half.RevenueProjection)
	}
	if diff := math.Abs(full.EstimatedCTR - 2*half.EstimatedCTR); diff > 0.011 {
		t.Errorf("CTR %v is not ~double %v", full.EstimatedCTR, half.EstimatedCTR)
	}
	if diff := math.Abs(full.EstimatedConversionRate - 2*half.EstimatedConversionRate); diff > 0.011 {
		t.Errorf("conversion %v is not ~double %v", full.EstimatedConversionRate, half.EstimatedConversionRate)
	}
}

func TestPredictUnboundedAboveReference(t *testing.T) {
	e := testEngine()
	p := e.predict(types.ContentTypeLandingPage, 100)
	// 35% baseline CTR scaled by 100/75 exceeds the baseline by a third.
	if p.EstimatedCTR <= 35.0 {
		t.Errorf("estimated CTR = %v, want above the 35.0 baseline", p.EstimatedCTR)
	}
}

func TestPredictCTRCap(t *testing.T) {
	e := New(nil, Options{CTRCap: 40.0})
	p := e.predict(types.ContentTypeLandingPage, 100)
	if p.EstimatedCTR != 40.0 {
		t.Errorf("estimated CTR = %v, want capped at 40.0", p.EstimatedCTR)
	}
}

func TestPredictValuePerConversion(t *testing.T) {
	e := New(nil, Options{ValuePerConversion: 1000})
	p := e.predict(types.ContentTypeBlog, 75)
	// Multiplier 1.0: revenue is conversion baseline times the unit value.
	if p.RevenueProjection != 1200 {
		t.Errorf("revenue projection = %d, want 1200", p.RevenueProjection)
	}
}

func TestScoreFactorsAlwaysInRange(t *testing.T) {
	e := testEngine()
	texts := []string{
		"",
		"plain text with no signals at all",
		"amazing incredible breakthrough proven effortless transform love success " +
			"struggle frustrated tired of overwhelmed wasting time stuck for example " +
			"now today only limited last chance deadline ends soon hurry 5 seats left 48 hours " +
			"case studies 10,000+ customers recommended by rating " +
			"results benefit improve reduce save increase boost grow gain 30% unlike " +
			"learn more sign up now click here try free download register buy now get started " +
			"money-back guarantee years of experience contact us certified",
	}

	for _, text := range texts {
		for _, ct := range types.ContentTypes {
			report := e.Score(Request{Content: text, ContentType: ct})
			for name, score := range map[string]int{
				"emotional": report.Factors.EmotionalAppeal,
				"urgency":   report.Factors.Urgency,
				"social":    report.Factors.SocialProof,
				"value":     report.Factors.ValueProposition,
				"cta":       report.Factors.CallToAction,
				"trust":     report.Factors.TrustBuilding,
			} {
				if score < 0 || score > 100 {
					t.Errorf("%s score %d out of range for %q/%s", name, score, text[:min(20, len(text))], ct)
				}
			}
			if report.ConversionScore < 0 || report.ConversionScore > 100 {
				t.Errorf("composite %d out of range", report.ConversionScore)
			}
		}
	}
}

func TestLandingPageTestimonialScoring(t *testing.T) {
	e := testEngine()
	report := e.Score(Request{
		Content:     "Our case studies and customer testimonials speak for themselves.",
		ContentType: types.ContentTypeLandingPage,
	})

	if report.Factors.SocialProof < 60 {
		t.Errorf("social proof = %d, want >= 60 (base 40 + testimonial marker 20)", report.Factors.SocialProof)
	}
	if !containsString(report.Suggestions, msgLandingSocial) {
		t.Errorf("suggestions missing landing-page testimonial placement: %v", report.Suggestions)
	}
}

func TestEmailMultiCTAScoring(t *testing.T) {
	e := testEngine()
	report := e.Score(Request{
		Content:     "Click here to read the guide, then learn more about the full program today.",
		ContentType: types.ContentTypeEmail,
	})

	// Two distinct phrases (+40) and the email multi-CTA bonus (+10).
	if report.Factors.CallToAction != 85 {
		t.Errorf("call to action = %d, want 85", report.Factors.CallToAction)
	}
	if !containsString(report.Suggestions, msgEmailPostscript) {
		t.Errorf("suggestions missing postscript hint: %v", report.Suggestions)
	}
	if containsString(report.Suggestions, msgCallToAction) {
		t.Errorf("cta suggestion present despite score 85: %v", report.Suggestions)
	}
}

func TestTierFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"}, {85, "A"}, {84, "B"}, {70, "B"}, {69, "C"},
		{50, "C"}, {49, "D"}, {30, "D"}, {29, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := TierFromScore(tt.score); got != tt.want {
			t.Errorf("TierFromScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
