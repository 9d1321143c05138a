package formatting

// ATSConfig controls the formatting rules applied by the Formatter
type ATSConfig struct {
	MaxLineLength      int      `json:"max_line_length" validate:"gt=0"`
	BulletStyle        string   `json:"bullet_style" validate:"oneof=• - *"`
	SectionOrder       []string `json:"section_order"`
	OptimizeKeywords   bool     `json:"optimize_keywords"`
	RemoveSpecialChars bool     `json:"remove_special_chars"`
}

// DefaultATSConfig returns the standard configuration
func DefaultATSConfig() ATSConfig {
	return ATSConfig{
		MaxLineLength:      80,
		BulletStyle:        "•",
		SectionOrder:       DefaultSectionOrder(),
		OptimizeKeywords:   true,
		RemoveSpecialChars: true,
	}
}

// DefaultSectionOrder is the ATS-preferred ordering of resume sections
func DefaultSectionOrder() []string {
	return []string{
		"contact",
		"summary",
		"experience",
		"education",
		"skills",
		"projects",
		"certifications",
	}
}
