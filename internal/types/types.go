// Package types provides shared types used across the copyscore codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "fmt"

// ContentType identifies the marketing channel a piece of content is written
// for. The enumeration is closed; table lookups fall back to blog for
// anything else.
type ContentType string

// Recognized content types.
const (
	ContentTypeBlog        ContentType = "blog"
	ContentTypeEmail       ContentType = "email"
	ContentTypeSocial      ContentType = "social"
	ContentTypeLandingPage ContentType = "landing_page"
	ContentTypeYouTube     ContentType = "youtube"
)

// ContentTypes lists every recognized content type in display order.
var ContentTypes = []ContentType{
	ContentTypeBlog,
	ContentTypeEmail,
	ContentTypeSocial,
	ContentTypeLandingPage,
	ContentTypeYouTube,
}

// Valid reports whether ct is a recognized content type.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeBlog, ContentTypeEmail, ContentTypeSocial, ContentTypeLandingPage, ContentTypeYouTube:
		return true
	}
	return false
}

// ParseContentType validates a content-type label at the request boundary.
// Scoring-table lookups keep a silent blog fallback; this is the strict
// counterpart for user-supplied labels (flags, frontmatter).
func ParseContentType(label string) (ContentType, error) {
	ct := ContentType(label)
	if !ct.Valid() {
		return "", fmt.Errorf("unknown content type %q (must be one of blog, email, social, landing_page, youtube)", label)
	}
	return ct, nil
}

// Factor name constants used in signal breakdowns and report fields.
const (
	FactorEmotionalAppeal  = "emotionalAppeal"
	FactorUrgency          = "urgency"
	FactorSocialProof      = "socialProof"
	FactorValueProposition = "valueProposition"
	FactorCallToAction     = "callToAction"
	FactorTrustBuilding    = "trustBuilding"
)
