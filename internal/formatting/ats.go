package formatting

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-converter/internal/dates"
	"github.com/jonathan/resume-converter/internal/types"
)

// charReplacements is applied in order before the special-character strip.
// Smart punctuation confuses ATS text extraction.
var charReplacements = []struct {
	old string
	new string
}{
	{"“", `"`}, // left double quote
	{"”", `"`}, // right double quote
	{"‘", "'"}, // left single quote
	{"’", "'"}, // right single quote
	{"—", "-"}, // em dash
	{"–", "-"}, // en dash
	{"…", "..."},
}

// specialCharsPattern matches everything outside the ATS-safe character set
var specialCharsPattern = regexp.MustCompile(`[^\w\s\-.,()&/]`)

// Formatter produces an ATS-normalized copy of parsed resume data. It never
// mutates its input; every call formats a deep clone.
type Formatter struct {
	config       ATSConfig
	standardizer *dates.Standardizer
}

// NewFormatter builds a formatter for the given configuration
func NewFormatter(config ATSConfig) *Formatter {
	if config.MaxLineLength <= 0 {
		config.MaxLineLength = DefaultATSConfig().MaxLineLength
	}
	return &Formatter{
		config:       config,
		standardizer: dates.NewStandardizer(),
	}
}

// FormatResume returns an independent, ATS-formatted copy of the resume.
// A post-condition failure (empty contact fields, overlong lines) returns a
// ComplianceError; callers must treat it as fatal.
func (f *Formatter) FormatResume(data *types.ResumeData) (*types.ResumeData, error) {
	if data == nil {
		return nil, &ComplianceError{Component: "Formatter", Message: "resume data is nil"}
	}

	formatted := data.Clone()

	formatted.Contact = f.formatContact(formatted.Contact)
	if formatted.Summary != "" {
		formatted.Summary = f.wrapText(f.cleanText(formatted.Summary))
	}
	for i := range formatted.Experience {
		formatted.Experience[i] = f.formatExperience(formatted.Experience[i])
	}
	for i := range formatted.Education {
		formatted.Education[i] = f.formatEducation(formatted.Education[i])
	}
	if formatted.Skills != nil {
		f.formatSkills(formatted.Skills)
	}
	for i := range formatted.Projects {
		formatted.Projects[i] = f.formatProject(formatted.Projects[i])
	}
	for i := range formatted.Certifications {
		formatted.Certifications[i] = f.formatCertification(formatted.Certifications[i])
	}
	formatted.AdditionalSections = f.formatAdditionalSections(formatted.AdditionalSections)

	if err := f.checkCompliance(formatted); err != nil {
		return nil, err
	}
	return formatted, nil
}

func (f *Formatter) formatContact(contact types.ContactInfo) types.ContactInfo {
	contact.Name = f.cleanText(contact.Name)
	if contact.Location != "" {
		contact.Location = f.cleanText(contact.Location)
	}
	return contact
}

func (f *Formatter) formatExperience(exp types.Experience) types.Experience {
	exp.Title = f.cleanText(exp.Title)
	exp.Company = f.cleanText(exp.Company)
	if exp.Location != "" {
		exp.Location = f.cleanText(exp.Location)
	}
	exp.StartDate, exp.EndDate = f.standardizer.StandardizeDateRange(exp.StartDate, exp.EndDate)
	exp.Bullets = f.OptimizeBullets(exp.Bullets)
	return exp
}

func (f *Formatter) formatEducation(edu types.Education) types.Education {
	edu.Degree = f.cleanText(edu.Degree)
	edu.School = f.cleanText(edu.School)
	if edu.Location != "" {
		edu.Location = f.cleanText(edu.Location)
	}
	if edu.StartDate != "" {
		edu.StartDate = f.standardizer.StandardizeDate(edu.StartDate)
	}
	if edu.EndDate != "" {
		edu.EndDate = f.standardizer.StandardizeDate(edu.EndDate)
	}
	for i, honor := range edu.Honors {
		edu.Honors[i] = f.cleanText(honor)
	}
	for i, course := range edu.Coursework {
		edu.Coursework[i] = f.cleanText(course)
	}
	return edu
}

func (f *Formatter) formatSkills(skills *types.Skills) {
	for i := range skills.Categories {
		skills.Categories[i].Name = f.cleanText(skills.Categories[i].Name)
		for j, skill := range skills.Categories[i].Skills {
			skills.Categories[i].Skills[j] = f.cleanText(skill)
		}
	}
	for i, skill := range skills.RawSkills {
		skills.RawSkills[i] = f.cleanText(skill)
	}
}

func (f *Formatter) formatProject(project types.Project) types.Project {
	project.Name = f.cleanText(project.Name)
	if project.Description != "" {
		project.Description = f.wrapText(f.cleanText(project.Description))
	}
	if project.Date != "" {
		project.Date = f.standardizer.StandardizeDate(project.Date)
	}
	project.Bullets = f.OptimizeBullets(project.Bullets)
	return project
}

func (f *Formatter) formatCertification(cert types.Certification) types.Certification {
	cert.Name = f.cleanText(cert.Name)
	cert.Issuer = f.cleanText(cert.Issuer)
	cert.Date = f.standardizer.StandardizeDate(cert.Date)
	if cert.Expiry != "" {
		cert.Expiry = f.standardizer.StandardizeDate(cert.Expiry)
	}
	return cert
}

// formatAdditionalSections standardizes section names through the synonym
// table and cleans every content line
func (f *Formatter) formatAdditionalSections(sections map[string][]string) map[string][]string {
	if sections == nil {
		return nil
	}
	formatted := make(map[string][]string, len(sections))
	for name, lines := range sections {
		cleaned := make([]string, 0, len(lines))
		for _, line := range lines {
			if text := f.cleanText(line); text != "" {
				cleaned = append(cleaned, f.wrapText(text))
			}
		}
		formatted[StandardizeHeader(name)] = cleaned
	}
	return formatted
}

// OptimizeBullets drops blank bullets, re-capitalizes the first letter, and
// applies character cleanup plus line wrapping to each bullet
func (f *Formatter) OptimizeBullets(bullets []string) []string {
	if len(bullets) == 0 {
		return bullets
	}
	optimized := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		cleaned := f.cleanText(bullet)
		if cleaned == "" {
			continue
		}
		optimized = append(optimized, f.wrapText(upperFirst(cleaned)))
	}
	return optimized
}

// upperFirst upper-cases the first rune. Slicing a byte instead would split
// multibyte letters.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// cleanText applies the substitution table, strips remaining special
// characters when configured, and collapses whitespace runs
func (f *Formatter) cleanText(text string) string {
	if text == "" {
		return text
	}
	cleaned := text
	for _, repl := range charReplacements {
		cleaned = strings.ReplaceAll(cleaned, repl.old, repl.new)
	}
	if f.config.RemoveSpecialChars {
		cleaned = specialCharsPattern.ReplaceAllString(cleaned, "")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// wrapText greedily wraps words at MaxLineLength. Words are never split, and
// no produced line exceeds the limit unless a single word does.
func (f *Formatter) wrapText(text string) string {
	if text == "" || len(text) <= f.config.MaxLineLength {
		return text
	}

	words := strings.Fields(text)
	var lines []string
	var current []string
	length := 0

	for _, word := range words {
		wordLength := len(word)
		if len(current) > 0 {
			wordLength++ // joining space
		}
		if length+wordLength > f.config.MaxLineLength && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			length = len(word)
		} else {
			current = append(current, word)
			length += wordLength
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// checkCompliance enforces the formatter's post-conditions: contact name and
// email present, and no produced content line over the limit
func (f *Formatter) checkCompliance(data *types.ResumeData) error {
	if strings.TrimSpace(data.Contact.Name) == "" || strings.TrimSpace(data.Contact.Email) == "" {
		return &ComplianceError{
			Component: "Formatter",
			Message:   "contact name and email must be non-empty after formatting",
		}
	}

	check := func(content, where string) error {
		for _, line := range strings.Split(content, "\n") {
			if len(line) > f.config.MaxLineLength {
				return &ComplianceError{
					Component: "Formatter",
					Message: fmt.Sprintf("%s line exceeds %d characters after wrapping: %q",
						where, f.config.MaxLineLength, line),
				}
			}
		}
		return nil
	}

	if err := check(data.Summary, "summary"); err != nil {
		return err
	}
	for i, exp := range data.Experience {
		for _, bullet := range exp.Bullets {
			if err := check(bullet, fmt.Sprintf("experience entry %d bullet", i+1)); err != nil {
				return err
			}
		}
	}
	return nil
}
