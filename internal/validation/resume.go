package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-converter/internal/dates"
	"github.com/jonathan/resume-converter/internal/types"
)

const (
	minFieldLength  = 2
	maxBulletLength = 200
)

// actionWords is the fixed list checked against bullet openings in strict mode
var actionWords = []string{
	"led", "managed", "developed", "created", "implemented",
	"improved", "increased", "decreased", "built", "designed",
	"analyzed", "coordinated", "achieved", "delivered", "optimized",
}

// recognizedDatePatterns are the formats accepted by the date-range check
var recognizedDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}$`),
	regexp.MustCompile(`^\d{1,2}/\d{4}$`),
	regexp.MustCompile(`(?i)^(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}$`),
	regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}$`),
}

// ResumeValidator checks parsed resume data for structural and quality
// issues. Strict mode promotes empty-section findings to errors and enables
// the action-verb bullet check.
type ResumeValidator struct {
	strict          bool
	minBulletLength int
	standardizer    *dates.Standardizer
}

// NewResumeValidator builds a validator for the given strictness
func NewResumeValidator(strict bool) *ResumeValidator {
	minBullet := 5
	if strict {
		minBullet = 10
	}
	return &ResumeValidator{
		strict:          strict,
		minBulletLength: minBullet,
		standardizer:    dates.NewStandardizer(),
	}
}

// MinBulletLength exposes the short-bullet warning boundary
func (v *ResumeValidator) MinBulletLength() int {
	return v.minBulletLength
}

// ValidateResume runs all post-parse checks and never fails; findings are
// accumulated into the result
func (v *ResumeValidator) ValidateResume(data *types.ResumeData) types.ValidationResult {
	var errors []string
	var warnings []string

	contactErrors, contactWarnings := v.validateContact(&data.Contact)
	errors = append(errors, contactErrors...)
	warnings = append(warnings, contactWarnings...)

	expErrors, expWarnings := v.validateExperience(data.Experience)
	errors = append(errors, expErrors...)
	warnings = append(warnings, expWarnings...)

	eduErrors, eduWarnings := v.validateEducation(data.Education)
	errors = append(errors, eduErrors...)
	warnings = append(warnings, eduWarnings...)

	warnings = append(warnings, v.validateStructure(data)...)

	return types.NewValidationResult(errors, warnings)
}

func (v *ResumeValidator) validateContact(contact *types.ContactInfo) ([]string, []string) {
	var errors []string
	var warnings []string

	if len(strings.TrimSpace(contact.Name)) < minFieldLength {
		errors = append(errors, "name must be at least 2 characters long")
	}
	if contact.Email == "" {
		errors = append(errors, "email address is required")
	}
	if contact.Phone != "" && !validPhoneDigits(contact.Phone) {
		warnings = append(warnings, "phone number format may not be standard")
	}
	if contact.LinkedIn != "" && !hasHostPrefix(contact.LinkedIn, "linkedin.com") {
		warnings = append(warnings, "linkedin URL should start with https://www.linkedin.com")
	}
	if contact.GitHub != "" && !hasHostPrefix(contact.GitHub, "github.com") {
		warnings = append(warnings, "github URL should start with https://github.com")
	}

	return errors, warnings
}

func (v *ResumeValidator) validateExperience(experience []types.Experience) ([]string, []string) {
	var errors []string
	var warnings []string

	if len(experience) == 0 {
		if v.strict {
			errors = append(errors, "at least 1 experience entry is required")
		} else {
			warnings = append(warnings, "consider adding work experience entries")
		}
	}

	for i, exp := range experience {
		prefix := fmt.Sprintf("experience entry %d", i+1)

		if len(strings.TrimSpace(exp.Title)) < minFieldLength {
			errors = append(errors, fmt.Sprintf("%s: job title must be at least 2 characters", prefix))
		}
		if len(strings.TrimSpace(exp.Company)) < minFieldLength {
			errors = append(errors, fmt.Sprintf("%s: company name must be at least 2 characters", prefix))
		}

		dateErrors, dateWarnings := v.validateDateRange(exp.StartDate, exp.EndDate)
		for _, finding := range dateErrors {
			errors = append(errors, fmt.Sprintf("%s: %s", prefix, finding))
		}
		for _, finding := range dateWarnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s", prefix, finding))
		}

		warnings = append(warnings, v.validateBullets(exp.Bullets, prefix)...)
	}

	return errors, warnings
}

func (v *ResumeValidator) validateEducation(education []types.Education) ([]string, []string) {
	var errors []string
	var warnings []string

	if len(education) == 0 {
		if v.strict {
			errors = append(errors, "at least 1 education entry is required")
		} else {
			warnings = append(warnings, "consider adding education entries")
		}
	}

	for i, edu := range education {
		prefix := fmt.Sprintf("education entry %d", i+1)

		if len(strings.TrimSpace(edu.Degree)) < minFieldLength {
			errors = append(errors, fmt.Sprintf("%s: degree name must be at least 2 characters", prefix))
		}
		if len(strings.TrimSpace(edu.School)) < minFieldLength {
			errors = append(errors, fmt.Sprintf("%s: school name must be at least 2 characters", prefix))
		}

		if edu.StartDate != "" || edu.EndDate != "" {
			dateErrors, dateWarnings := v.validateDateRange(edu.StartDate, edu.EndDate)
			for _, finding := range append(dateErrors, dateWarnings...) {
				warnings = append(warnings, fmt.Sprintf("%s: %s", prefix, finding))
			}
		}
	}

	return errors, warnings
}

// validateStructure produces whole-resume quality warnings
func (v *ResumeValidator) validateStructure(data *types.ResumeData) []string {
	var warnings []string

	if len(data.AllSections()) < 3 {
		warnings = append(warnings, "resume should have at least 3 main sections (contact, experience, education)")
	}
	if data.Summary == "" {
		warnings = append(warnings, "consider adding a professional summary")
	}
	if data.Skills == nil || !data.Skills.HasSkills() {
		warnings = append(warnings, "consider adding a skills section")
	}

	totalBullets := 0
	for _, exp := range data.Experience {
		totalBullets += len(exp.Bullets)
	}
	if totalBullets < 3 {
		warnings = append(warnings, "resume should have at least 3 achievement bullets across all experience")
	}

	return warnings
}

func (v *ResumeValidator) validateBullets(bullets []string, prefix string) []string {
	var warnings []string

	if len(bullets) == 0 {
		return append(warnings, fmt.Sprintf("%s: consider adding achievement bullets", prefix))
	}

	for i, bullet := range bullets {
		ref := fmt.Sprintf("%s, bullet %d", prefix, i+1)

		if len(bullet) < v.minBulletLength {
			warnings = append(warnings, fmt.Sprintf("%s: bullet point is very short (%d chars)", ref, len(bullet)))
		}
		if len(bullet) > maxBulletLength {
			warnings = append(warnings, fmt.Sprintf("%s: bullet point is very long (%d chars)", ref, len(bullet)))
		}

		if v.strict && !containsActionWord(bullet) {
			warnings = append(warnings, fmt.Sprintf("%s: consider starting with a strong action verb", ref))
		}
	}

	return warnings
}

// validateDateRange checks a start/end pair. Format and order findings are
// warnings; the only error case is strict mode with unrecognized non-Present
// formats on both sides.
func (v *ResumeValidator) validateDateRange(start, end string) ([]string, []string) {
	var errors []string
	var warnings []string

	if start == "" {
		return nil, []string{"start date is missing"}
	}
	if end == "" {
		return nil, []string{"end date is missing"}
	}

	if dates.IsPresent(end) || strings.EqualFold(end, "unknown") {
		return nil, nil
	}
	if strings.EqualFold(start, "unknown") {
		return nil, nil
	}

	startRecognized := recognizedDateFormat(start)
	endRecognized := recognizedDateFormat(end)

	if !startRecognized {
		warnings = append(warnings, fmt.Sprintf("start date %q format is not recognized", start))
	}
	if !endRecognized {
		warnings = append(warnings, fmt.Sprintf("end date %q format is not recognized", end))
	}
	if v.strict && !startRecognized && !endRecognized {
		errors = append(errors, fmt.Sprintf("date range %q - %q is not in a recognized format", start, end))
	}

	if !v.standardizer.ValidateDateOrder(start, end) {
		warnings = append(warnings, fmt.Sprintf("start date %q is after end date %q", start, end))
	}

	return errors, warnings
}

func recognizedDateFormat(date string) bool {
	for _, pattern := range recognizedDatePatterns {
		if pattern.MatchString(date) {
			return true
		}
	}
	return false
}

func containsActionWord(bullet string) bool {
	lower := strings.ToLower(bullet)
	for _, word := range actionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// hasHostPrefix reports whether the URL starts with https://host or
// https://www.host. A substring match would accept the host anywhere in
// the URL, including the path.
func hasHostPrefix(url, host string) bool {
	return strings.HasPrefix(url, "https://"+host) ||
		strings.HasPrefix(url, "https://www."+host)
}

func validPhoneDigits(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}
