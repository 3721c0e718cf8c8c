package scoring

import (
	"strings"

	"github.com/dotcommander/copyscore/internal/types"
)

// Suggestion thresholds. A factor below its threshold earns the matching
// remediation message.
const (
	thresholdEmotionalAppeal  = 70
	thresholdUrgency          = 60
	thresholdSocialProof      = 70
	thresholdValueProposition = 70
	thresholdCallToAction     = 70
	thresholdTrustBuilding    = 60

	// Landing pages are held to a higher social-proof bar.
	thresholdLandingSocialProof = 80
)

// Remediation messages. Each rule maps to exactly one message, so the output
// can never contain duplicates.
const (
	msgEmotionalAppeal  = "Strengthen emotional appeal: name a concrete reader pain point or use vivid success language"
	msgUrgency          = "Add urgency: a deadline, a limited quantity, or a time-limited offer"
	msgSocialProof      = "Add social proof: customer testimonials, case studies, or usage statistics"
	msgValueProposition = "Sharpen the value proposition: quantify the benefit or state what makes the offer different"
	msgCallToAction     = "Strengthen the call to action: use a clear action phrase near the end of the content"
	msgTrustBuilding    = "Build trust: mention guarantees, support, credentials, or company background"
	msgEmailPostscript  = "Add a P.S. line restating the offer; email postscripts get outsized readership"
	msgLandingSocial    = "Place testimonials near the top of the landing page; social proof drives landing-page conversions"
)

// postscriptMarker is what an email must contain to skip the P.S. rule.
const postscriptMarker = "P.S."

// suggest applies the threshold rules in fixed order and appends the two
// content-type-specific checks. Order is part of the contract.
func (e *Engine) suggest(req Request, f FactorScores) []string {
	var out []string

	if f.EmotionalAppeal < thresholdEmotionalAppeal {
		out = append(out, msgEmotionalAppeal)
	}
	if f.Urgency < thresholdUrgency {
		out = append(out, msgUrgency)
	}
	if f.SocialProof < thresholdSocialProof {
		out = append(out, msgSocialProof)
	}
	if f.ValueProposition < thresholdValueProposition {
		out = append(out, msgValueProposition)
	}
	if f.CallToAction < thresholdCallToAction {
		out = append(out, msgCallToAction)
	}
	if f.TrustBuilding < thresholdTrustBuilding {
		out = append(out, msgTrustBuilding)
	}

	if req.ContentType == types.ContentTypeEmail && !strings.Contains(req.Content, postscriptMarker) {
		out = append(out, msgEmailPostscript)
	}
	if req.ContentType == types.ContentTypeLandingPage && f.SocialProof < thresholdLandingSocialProof {
		out = append(out, msgLandingSocial)
	}

	return out
}
