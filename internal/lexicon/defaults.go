package lexicon

// Default returns the built-in English lexicon. The returned value is a
// fresh copy; callers may mutate it without affecting later calls.
func Default() *Lexicon {
	return &Lexicon{
		Positive: []string{
			"amazing", "incredible", "breakthrough", "proven",
			"effortless", "transform", "love", "success",
		},
		PainPoints: []string{
			"struggle", "frustrated", "tired of", "overwhelmed",
			"wasting time", "stuck",
		},
		Storytelling: []string{
			"for example", "in practice", "imagine", "true story",
		},
		Urgency: []string{
			"now", "today only", "limited", "last chance",
			"deadline", "ends soon", "hurry",
		},
		Testimonials: []string{
			"customer testimonial", "testimonials", "case study",
			"case studies", "success story",
		},
		Endorsements: []string{
			"recommended by", "endorsed by", "featured in",
			"as seen on", "industry expert",
		},
		Ratings: []string{
			"rating", "rated", "stars", "★",
		},
		Benefits: []string{
			"results", "benefit", "improve", "reduce", "save",
			"increase", "boost", "grow", "gain",
		},
		Differentiation: []string{
			"unlike", "unique", "one-of-a-kind", "only solution",
		},
		CTAPhrases: []string{
			"learn more", "sign up now", "click here", "try free",
			"download", "register", "buy now", "get started",
		},
		Guarantees: []string{
			"money-back", "guarantee", "refund", "24/7 support",
			"support team",
		},
		Experience: []string{
			"years of experience", "track record", "trusted by",
			"founded in", "established",
		},
		Contact: []string{
			"contact us", "about us", "our team", "headquarters",
		},
		Certifications: []string{
			"certified", "accredited", "award-winning", "iso 9001",
			"patent",
		},
	}
}
