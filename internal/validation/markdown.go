// Package validation provides non-throwing quality checks for raw markdown
// input and parsed resume data.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-converter/internal/types"
)

const minContentLength = 100

var (
	headingPattern = regexp.MustCompile(`(?m)^#+\s+(.+)$`)
	emailPattern   = regexp.MustCompile(`[\w._%+-]+@[\w.-]+\.[A-Za-z]{2,}`)
)

// requiredSectionWords must appear (case-insensitive substring) somewhere in
// the document; absence is a warning, not an error
var requiredSectionWords = []string{"experience", "education"}

// ValidateMarkdownStructure checks raw markdown before parsing. Empty input
// and a missing email are errors (the parse cannot succeed); thin structure
// is reported as warnings.
func ValidateMarkdownStructure(markdown string) types.ValidationResult {
	var errors []string
	var warnings []string

	if strings.TrimSpace(markdown) == "" {
		errors = append(errors, "resume content is empty")
		return types.NewValidationResult(errors, warnings)
	}

	if len(headingPattern.FindAllString(markdown, -1)) < 2 {
		warnings = append(warnings, "resume should have multiple sections with headings")
	}

	lower := strings.ToLower(markdown)
	var missing []string
	for _, word := range requiredSectionWords {
		if !strings.Contains(lower, word) {
			missing = append(missing, word)
		}
	}
	if len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("consider adding these sections: %s", strings.Join(missing, ", ")))
	}

	if !emailPattern.MatchString(markdown) {
		errors = append(errors, "email address not found in resume")
	}

	if len(markdown) < minContentLength {
		warnings = append(warnings, "resume content seems very short")
	}

	return types.NewValidationResult(errors, warnings)
}
