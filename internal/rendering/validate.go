package rendering

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-converter/internal/types"
)

// ValidateHTMLOutput checks that a rendered HTML document actually carries
// the resume it was built from: the name in the heading, the email somewhere
// in the body, and one section element per populated section. Findings are
// errors because a mismatch means the renderer lost data.
func ValidateHTMLOutput(html string, data *types.ResumeData) types.ValidationResult {
	var errors []string
	var warnings []string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return types.NewValidationResult(
			[]string{fmt.Sprintf("output is not parseable HTML: %v", err)}, nil)
	}

	if heading := strings.TrimSpace(doc.Find("h1").First().Text()); heading != data.Contact.Name {
		errors = append(errors, fmt.Sprintf("heading %q does not match contact name %q", heading, data.Contact.Name))
	}
	if !strings.Contains(doc.Find("body").Text(), data.Contact.Email) {
		errors = append(errors, "contact email missing from output")
	}

	sectionChecks := []struct {
		id      string
		present bool
	}{
		{"summary", data.Summary != ""},
		{"experience", len(data.Experience) > 0},
		{"education", len(data.Education) > 0},
		{"skills", data.Skills != nil && data.Skills.HasSkills()},
		{"projects", len(data.Projects) > 0},
		{"certifications", len(data.Certifications) > 0},
	}
	for _, check := range sectionChecks {
		found := doc.Find("section#"+check.id).Length() > 0
		if check.present && !found {
			errors = append(errors, fmt.Sprintf("%s section missing from output", check.id))
		}
		if !check.present && found {
			warnings = append(warnings, fmt.Sprintf("%s section rendered without source data", check.id))
		}
	}

	bullets := 0
	for _, exp := range data.Experience {
		bullets += len(exp.Bullets)
	}
	if rendered := doc.Find("section#experience li").Length(); bullets > 0 && rendered != bullets {
		errors = append(errors, fmt.Sprintf("expected %d experience bullets in output, found %d", bullets, rendered))
	}

	return types.NewValidationResult(errors, warnings)
}
