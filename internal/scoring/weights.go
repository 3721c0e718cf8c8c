package scoring

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	cueval "github.com/dotcommander/copyscore/internal/cue"
	"github.com/dotcommander/copyscore/internal/types"
)

// WeightVector assigns each factor its share of the composite score. Every
// table entry sums to 1.0; weights_test.go asserts the invariant and
// LoadWeightsFile enforces it for overrides.
type WeightVector struct {
	EmotionalAppeal  float64 `json:"emotionalAppeal" yaml:"emotional_appeal"`
	Urgency          float64 `json:"urgency" yaml:"urgency"`
	SocialProof      float64 `json:"socialProof" yaml:"social_proof"`
	ValueProposition float64 `json:"valueProposition" yaml:"value_proposition"`
	CallToAction     float64 `json:"callToAction" yaml:"call_to_action"`
	TrustBuilding    float64 `json:"trustBuilding" yaml:"trust_building"`
}

// Sum returns the total of all six weights.
func (w WeightVector) Sum() float64 {
	return w.EmotionalAppeal + w.Urgency + w.SocialProof +
		w.ValueProposition + w.CallToAction + w.TrustBuilding
}

var defaultWeights = map[types.ContentType]WeightVector{
	types.ContentTypeBlog: {
		EmotionalAppeal:  0.20,
		Urgency:          0.10,
		SocialProof:      0.20,
		ValueProposition: 0.25,
		CallToAction:     0.10,
		TrustBuilding:    0.15,
	},
	types.ContentTypeEmail: {
		EmotionalAppeal:  0.25,
		Urgency:          0.20,
		SocialProof:      0.10,
		ValueProposition: 0.20,
		CallToAction:     0.20,
		TrustBuilding:    0.05,
	},
	types.ContentTypeSocial: {
		EmotionalAppeal:  0.30,
		Urgency:          0.15,
		SocialProof:      0.25,
		ValueProposition: 0.15,
		CallToAction:     0.10,
		TrustBuilding:    0.05,
	},
	types.ContentTypeLandingPage: {
		EmotionalAppeal:  0.15,
		Urgency:          0.15,
		SocialProof:      0.20,
		ValueProposition: 0.20,
		CallToAction:     0.20,
		TrustBuilding:    0.10,
	},
	types.ContentTypeYouTube: {
		EmotionalAppeal:  0.30,
		Urgency:          0.10,
		SocialProof:      0.20,
		ValueProposition: 0.20,
		CallToAction:     0.15,
		TrustBuilding:    0.05,
	},
}

// DefaultWeights returns a copy of the built-in weight table.
func DefaultWeights() map[types.ContentType]WeightVector {
	out := make(map[types.ContentType]WeightVector, len(defaultWeights))
	for ct, w := range defaultWeights {
		out[ct] = w
	}
	return out
}

// WeightsFor returns the weight vector for ct from the built-in table,
// falling back to the blog vector for unrecognized labels.
func WeightsFor(ct types.ContentType) WeightVector {
	if w, ok := defaultWeights[ct]; ok {
		return w
	}
	return defaultWeights[types.ContentTypeBlog]
}

// LoadWeightsFile reads a YAML weight override file, validates it against
// the embedded CUE schema, and returns the default table with the file's
// entries applied on top. Each overridden vector must sum to 1.0.
func LoadWeightsFile(path string) (map[types.ContentType]WeightVector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights file: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing weights file %s: %w", path, err)
	}
	if data == nil {
		return DefaultWeights(), nil
	}

	validator, err := cueval.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate("weights", data); err != nil {
		return nil, fmt.Errorf("invalid weights file %s: %w", path, err)
	}

	var overrides map[string]WeightVector
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parsing weights file %s: %w", path, err)
	}

	table := DefaultWeights()
	for label, w := range overrides {
		ct, err := types.ParseContentType(label)
		if err != nil {
			return nil, fmt.Errorf("weights file %s: %w", path, err)
		}
		if math.Abs(w.Sum()-1.0) > 1e-6 {
			return nil, fmt.Errorf("weights file %s: %s weights sum to %.4f, want 1.0", path, label, w.Sum())
		}
		table[ct] = w
	}
	return table, nil
}
