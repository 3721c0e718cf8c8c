// Package lexicon defines the keyword and marker-phrase tables the factor
// evaluators match against. The built-in defaults can be overridden from a
// YAML file so lexicons can be tuned or localized without code changes.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	cueval "github.com/dotcommander/copyscore/internal/cue"
)

// Lexicon groups every keyword list and marker-phrase list used during
// scoring. All entries except Positive are matched case-insensitively and
// must be lowercase; Positive is matched case-sensitively as written.
type Lexicon struct {
	// Emotional appeal
	Positive     []string `yaml:"positive"`
	PainPoints   []string `yaml:"pain_points"`
	Storytelling []string `yaml:"storytelling"`

	// Urgency
	Urgency []string `yaml:"urgency"`

	// Social proof
	Testimonials []string `yaml:"testimonials"`
	Endorsements []string `yaml:"endorsements"`
	Ratings      []string `yaml:"ratings"`

	// Value proposition
	Benefits        []string `yaml:"benefits"`
	Differentiation []string `yaml:"differentiation"`

	// Call to action
	CTAPhrases []string `yaml:"cta_phrases"`

	// Trust building
	Guarantees     []string `yaml:"guarantees"`
	Experience     []string `yaml:"experience"`
	Contact        []string `yaml:"contact"`
	Certifications []string `yaml:"certifications"`
}

// LoadFile reads a YAML lexicon override file, validates it against the
// embedded CUE schema, and merges it over the built-in defaults. Lists
// present in the file replace the corresponding default list wholesale;
// omitted lists keep their defaults.
func LoadFile(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}
	if data == nil {
		// An empty file is a no-op override.
		return Default(), nil
	}

	validator, err := cueval.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate("lexicon", data); err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	lex := Default()
	lex.merge(&override)
	return lex, nil
}

// merge replaces each default list with the override's list when non-empty.
func (l *Lexicon) merge(o *Lexicon) {
	replace := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	replace(&l.Positive, o.Positive)
	replace(&l.PainPoints, o.PainPoints)
	replace(&l.Storytelling, o.Storytelling)
	replace(&l.Urgency, o.Urgency)
	replace(&l.Testimonials, o.Testimonials)
	replace(&l.Endorsements, o.Endorsements)
	replace(&l.Ratings, o.Ratings)
	replace(&l.Benefits, o.Benefits)
	replace(&l.Differentiation, o.Differentiation)
	replace(&l.CTAPhrases, o.CTAPhrases)
	replace(&l.Guarantees, o.Guarantees)
	replace(&l.Experience, o.Experience)
	replace(&l.Contact, o.Contact)
	replace(&l.Certifications, o.Certifications)
}
