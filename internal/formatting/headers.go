// Package formatting applies ATS-compliance normalization to parsed resume data.
package formatting

import "strings"

// standardHeaders maps canonical section categories to their display form
var standardHeaders = map[string]string{
	"summary":        "Summary",
	"experience":     "Experience",
	"education":      "Education",
	"skills":         "Skills",
	"certifications": "Certifications",
	"projects":       "Projects",
	"contact":        "Contact Information",
}

// headerVariants maps each canonical category to the heading spellings that
// should normalize to it
var headerVariants = map[string][]string{
	"summary": {
		"summary", "professional summary", "executive summary", "profile",
		"professional profile", "career summary", "overview", "objective",
		"career objective", "professional objective",
	},
	"experience": {
		"experience", "work experience", "professional experience",
		"employment", "employment history", "work history",
		"career history", "professional background", "positions held",
		"relevant experience",
	},
	"education": {
		"education", "academic background", "academic history",
		"educational background", "academic qualifications",
		"qualifications", "academic credentials", "degrees",
		"education and training", "formal education",
	},
	"skills": {
		"skills", "technical skills", "core competencies",
		"competencies", "areas of expertise", "expertise",
		"capabilities", "proficiencies", "technical proficiencies",
		"key skills", "skill set", "technologies",
	},
	"certifications": {
		"certifications", "certificates", "professional certifications",
		"licenses", "licenses and certifications", "credentials",
		"professional credentials", "accreditations",
		"professional development", "training",
	},
	"projects": {
		"projects", "key projects", "notable projects",
		"project experience", "selected projects",
		"project portfolio", "accomplishments",
		"key accomplishments", "achievements",
	},
	"contact": {
		"contact", "contact information", "contact details",
		"personal information", "personal details", "contact info",
	},
}

// reverseHeaderMapping is built once from headerVariants for lookup
var reverseHeaderMapping = func() map[string]string {
	mapping := make(map[string]string)
	for category, variants := range headerVariants {
		for _, variant := range variants {
			mapping[variant] = category
		}
	}
	return mapping
}()

// CategoryForHeader returns the canonical category for a heading, or an
// empty string when the heading is not a known section name
func CategoryForHeader(header string) string {
	return reverseHeaderMapping[strings.ToLower(cleanHeader(header))]
}

// StandardizeHeader rewrites a section heading to its ATS-standard form.
// Unrecognized headings are returned cleaned and title-cased.
func StandardizeHeader(header string) string {
	if header == "" {
		return header
	}
	cleaned := cleanHeader(header)
	if category, ok := reverseHeaderMapping[strings.ToLower(cleaned)]; ok {
		return standardHeaders[category]
	}
	return titleCaseHeader(cleaned)
}

// cleanHeader collapses whitespace and strips stray punctuation
func cleanHeader(header string) string {
	cleaned := strings.Join(strings.Fields(header), " ")
	return strings.Trim(cleaned, ":.-_")
}

func titleCaseHeader(header string) string {
	words := strings.Fields(header)
	for i, word := range words {
		words[i] = upperFirst(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}
