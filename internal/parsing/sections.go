package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-converter/internal/dates"
	"github.com/jonathan/resume-converter/internal/types"
)

// subsectionRule decides whether a deeper heading is promoted to a
// structured entry of a given aggregate. Allow and deny lists are ordered
// tables so each rule is independently testable.
type subsectionRule struct {
	level int
	allow []string
	deny  []string
}

// Matches reports whether the heading qualifies: required level, at least
// one allow keyword, and none of the deny keywords.
func (r subsectionRule) Matches(section ResumeSection) bool {
	if section.Level != r.level {
		return false
	}
	title := strings.ToLower(section.Title)
	allowed := false
	for _, keyword := range r.allow {
		if strings.Contains(title, keyword) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	for _, keyword := range r.deny {
		if strings.Contains(title, keyword) {
			return false
		}
	}
	return true
}

var (
	experienceRule = subsectionRule{
		level: 3,
		allow: []string{
			"developer", "engineer", "manager", "analyst", "director",
			"lead", "senior", "junior", "intern", "consultant",
			"specialist", "coordinator", "administrator",
		},
		deny: []string{
			"bachelor", "master", "phd", "degree", "university", "college",
			"certified", "certification", "aws", "azure", "gcp",
		},
	}

	educationRule = subsectionRule{
		level: 3,
		allow: []string{
			"bachelor", "master", "phd", "ph.d", "doctorate", "associate",
			"diploma", "degree", "mba", "b.s.", "m.s.", "b.a.", "m.a.",
		},
		deny: []string{"certified", "certification"},
	}

	skillsRule = subsectionRule{
		level: 3,
		allow: []string{
			"language", "framework", "tool", "technolog", "database",
			"cloud", "platform", "librar", "skill", "programming",
		},
		deny: nil,
	}
)

var (
	// dateRangeLinePattern finds an embedded "Month YYYY - Month YYYY|Present"
	// token inside a content line
	dateRangeLinePattern = regexp.MustCompile(
		`(?i)([A-Za-z]+\.?\s+\d{4})\s*[-–—]\s*([A-Za-z]+\.?\s+\d{4}|[A-Za-z]+)`)
	// yearLinePattern matches lines that are just a year or a year range
	yearLinePattern = regexp.MustCompile(`(?i)^(\d{4})(?:\s*[-–—]\s*(\d{4}|[A-Za-z]+))?$`)
	// skillDelimiterPattern splits CSV-like skill lists
	skillDelimiterPattern = regexp.MustCompile(`[,;•|]`)
	// yearTokenPattern checks that a range end actually carries a year
	yearTokenPattern = regexp.MustCompile(`\d{4}`)
	// monthYearLinePattern matches lines that are a single "Month YYYY" date
	monthYearLinePattern = regexp.MustCompile(`(?i)^[A-Za-z]+\.?\s+\d{4}$`)
	// titleCompanySeparators are tried in order; " at " wins over " - "
	titleCompanySeparators = []string{" at ", " - "}
)

// EntryParser turns classified sections into structured entries
type EntryParser struct {
	standardizer *dates.Standardizer
}

// NewEntryParser creates the parser with a shared date standardizer
func NewEntryParser(standardizer *dates.Standardizer) *EntryParser {
	return &EntryParser{standardizer: standardizer}
}

// ParseExperience converts the experience aggregate into entries. Discrete
// subsections win when at least one heading is promoted by the role-keyword
// rule; otherwise the content is treated as one flat block.
func (p *EntryParser) ParseExperience(section ResumeSection, subsections []ResumeSection) []types.Experience {
	var promoted []ResumeSection
	var flat []string
	flat = append(flat, section.Content...)

	for _, sub := range subsections {
		if experienceRule.Matches(sub) {
			promoted = append(promoted, sub)
		} else {
			flat = append(flat, sub.Title)
			flat = append(flat, sub.Content...)
		}
	}

	if len(promoted) > 0 {
		entries := make([]types.Experience, 0, len(promoted))
		for _, sub := range promoted {
			entries = append(entries, p.parseExperienceSubsection(sub))
		}
		return entries
	}
	return p.parseFlatExperience(flat)
}

func (p *EntryParser) parseExperienceSubsection(sub ResumeSection) types.Experience {
	title, company := splitTitleCompany(sub.Title)
	entry := types.Experience{
		Title:     title,
		Company:   company,
		StartDate: UnknownField,
		EndDate:   UnknownField,
	}

	datesFound := false
	for _, line := range sub.Content {
		if !datesFound {
			if start, end, ok := p.extractDateRange(line); ok {
				entry.StartDate = start
				entry.EndDate = end
				datesFound = true
				continue
			}
		}
		if line != "" {
			entry.Bullets = append(entry.Bullets, line)
		}
	}
	return entry
}

// parseFlatExperience segments a flat content block. A capitalized line that
// splits into title/company starts a new entry; a date-range line fills the
// current entry's dates; a capitalized line on an entry with no company yet
// and no bullets fills the company; everything else is a bullet.
func (p *EntryParser) parseFlatExperience(lines []string) []types.Experience {
	var entries []types.Experience
	var current *types.Experience

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		// paragraphs keep literal bullet prefixes ("•" is not a markdown
		// list marker); those lines are always bullets of the current entry
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
			if current != nil {
				current.Bullets = append(current.Bullets, cleanListItemText(line))
			}
			continue
		}
		if start, end, ok := p.extractDateRange(line); ok {
			if current != nil {
				current.StartDate = start
				current.EndDate = end
			}
			continue
		}
		title, company := splitTitleCompany(line)
		if company != UnknownField && isCapitalized(line) {
			flush()
			current = &types.Experience{
				Title:     title,
				Company:   company,
				StartDate: UnknownField,
				EndDate:   UnknownField,
			}
			continue
		}
		if current == nil {
			if !isCapitalized(line) {
				continue
			}
			current = &types.Experience{
				Title:     line,
				Company:   UnknownField,
				StartDate: UnknownField,
				EndDate:   UnknownField,
			}
			continue
		}
		if current.Company == UnknownField && len(current.Bullets) == 0 && isCapitalized(line) {
			current.Company = line
			continue
		}
		current.Bullets = append(current.Bullets, line)
	}
	flush()
	return entries
}

// ParseEducation converts the education aggregate into entries
func (p *EntryParser) ParseEducation(section ResumeSection, subsections []ResumeSection) []types.Education {
	var promoted []ResumeSection
	var flat []string
	flat = append(flat, section.Content...)

	for _, sub := range subsections {
		if educationRule.Matches(sub) {
			promoted = append(promoted, sub)
		} else {
			flat = append(flat, sub.Title)
			flat = append(flat, sub.Content...)
		}
	}

	if len(promoted) > 0 {
		entries := make([]types.Education, 0, len(promoted))
		for _, sub := range promoted {
			entries = append(entries, p.parseEducationSubsection(sub))
		}
		return entries
	}
	return p.parseFlatEducation(flat)
}

// parseEducationSubsection reads an education entry from a promoted
// subsection: the heading is the degree, a year-shaped line sets the dates,
// the first non-date line is the school. Remaining lines are discarded.
func (p *EntryParser) parseEducationSubsection(sub ResumeSection) types.Education {
	entry := types.Education{Degree: capitalizeWords(sub.Title)}

	for _, line := range sub.Content {
		if match := yearLinePattern.FindStringSubmatch(line); match != nil {
			p.applyYearRange(&entry, match)
			continue
		}
		if entry.School == "" && line != "" {
			entry.School = line
		}
	}
	if entry.School == "" {
		entry.School = UnknownField
	}
	return entry
}

func (p *EntryParser) parseFlatEducation(lines []string) []types.Education {
	var entries []types.Education
	var current *types.Education

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if match := yearLinePattern.FindStringSubmatch(line); match != nil {
			if current != nil {
				p.applyYearRange(current, match)
			}
			continue
		}
		if educationRule.matchesText(line) && isCapitalized(line) {
			flush()
			current = &types.Education{Degree: capitalizeWords(line), School: UnknownField}
			continue
		}
		if current != nil && current.School == UnknownField {
			current.School = line
		}
	}
	flush()
	return entries
}

// applyYearRange fills education dates from a year line match. A bare year
// is treated as the completion year.
func (p *EntryParser) applyYearRange(entry *types.Education, match []string) {
	if match[2] == "" {
		entry.EndDate = match[1]
		return
	}
	if dates.IsPresent(match[2]) {
		entry.StartDate = match[1]
		entry.EndDate = "Present"
		return
	}
	entry.StartDate = match[1]
	entry.EndDate = match[2]
}

// ParseSkills converts the skills aggregate. Section content lines with a
// colon split into categories; lines without accumulate into the flat list.
// Promoted skills subsections contribute categories after the section-level
// ones. Returns nil when nothing was found.
func (p *EntryParser) ParseSkills(section ResumeSection, subsections []ResumeSection) *types.Skills {
	skills := &types.Skills{}

	for _, line := range section.Content {
		if name, list, ok := splitCategoryLine(line); ok {
			skills.Categories = append(skills.Categories, types.SkillCategory{Name: name, Skills: list})
			continue
		}
		skills.RawSkills = append(skills.RawSkills, splitSkillList(line)...)
	}

	for _, sub := range subsections {
		if !skillsRule.Matches(sub) {
			continue
		}
		name := strings.TrimSpace(strings.TrimSuffix(sub.Title, ":"))
		list := splitSkillList(strings.Join(sub.Content, ", "))
		if len(list) > 0 {
			skills.Categories = append(skills.Categories, types.SkillCategory{Name: name, Skills: list})
		}
	}

	if !skills.HasSkills() {
		return nil
	}
	return skills
}

// ParseProjects converts the projects aggregate. Subsection headings become
// project names; flat content falls back to one project per capitalized line.
func (p *EntryParser) ParseProjects(section ResumeSection, subsections []ResumeSection) []types.Project {
	var projects []types.Project

	for _, sub := range subsections {
		projects = append(projects, p.parseProjectSubsection(sub))
	}
	if len(projects) > 0 {
		return projects
	}
	return p.parseFlatProjects(section.Content)
}

func (p *EntryParser) parseProjectSubsection(sub ResumeSection) types.Project {
	project := types.Project{Name: strings.TrimSpace(sub.Title)}

	for _, line := range sub.Content {
		if line == "" {
			continue
		}
		if project.URL == "" {
			if url := urlPattern.FindString(line); url != "" && strings.TrimSpace(line) == url {
				project.URL = url
				continue
			}
		}
		if project.Date == "" && p.isDateLine(line) {
			project.Date = p.standardizer.StandardizeDate(line)
			continue
		}
		if name, list, ok := splitCategoryLine(line); ok && isTechnologyLabel(name) {
			project.Technologies = append(project.Technologies, list...)
			continue
		}
		if project.Description == "" {
			project.Description = line
			continue
		}
		project.Bullets = append(project.Bullets, cleanListItemText(line))
	}
	return project
}

func (p *EntryParser) parseFlatProjects(lines []string) []types.Project {
	var projects []types.Project
	var current *types.Project

	flush := func() {
		if current != nil {
			projects = append(projects, *current)
			current = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
			if current != nil {
				current.Bullets = append(current.Bullets, cleanListItemText(line))
			}
			continue
		}
		if isCapitalized(line) && !strings.Contains(line, ".") {
			flush()
			current = &types.Project{Name: line}
			continue
		}
		if current == nil {
			continue
		}
		if current.Description == "" {
			current.Description = line
			continue
		}
		current.Bullets = append(current.Bullets, line)
	}
	flush()
	return projects
}

// ParseCertifications converts the certifications aggregate. Subsection
// headings become certification names; flat lines split on " - " into
// name, issuer, and date.
func (p *EntryParser) ParseCertifications(section ResumeSection, subsections []ResumeSection) []types.Certification {
	var certs []types.Certification

	for _, sub := range subsections {
		cert := types.Certification{
			Name:   strings.TrimSpace(sub.Title),
			Issuer: UnknownField,
			Date:   UnknownField,
		}
		for _, line := range sub.Content {
			if line == "" {
				continue
			}
			if cert.Date == UnknownField && p.isDateLine(line) {
				cert.Date = p.standardizer.StandardizeDate(line)
				continue
			}
			if cert.Issuer == UnknownField {
				cert.Issuer = line
			}
		}
		certs = append(certs, cert)
	}
	if len(certs) > 0 {
		return certs
	}

	for _, line := range section.Content {
		if line == "" {
			continue
		}
		cert := types.Certification{Issuer: UnknownField, Date: UnknownField}
		parts := strings.SplitN(line, " - ", 3)
		cert.Name = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			if p.isDateLine(parts[1]) {
				cert.Date = p.standardizer.StandardizeDate(strings.TrimSpace(parts[1]))
			} else {
				cert.Issuer = strings.TrimSpace(parts[1])
			}
		}
		if len(parts) > 2 && p.isDateLine(parts[2]) {
			cert.Date = p.standardizer.StandardizeDate(strings.TrimSpace(parts[2]))
		}
		certs = append(certs, cert)
	}
	return certs
}

// isDateLine reports whether a whole line is a single date or year range
func (p *EntryParser) isDateLine(line string) bool {
	line = strings.TrimSpace(line)
	return yearLinePattern.MatchString(line) || monthYearLinePattern.MatchString(line)
}

func isTechnologyLabel(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "tech") || strings.Contains(lower, "stack") ||
		strings.Contains(lower, "built with") || strings.Contains(lower, "tools")
}

// extractDateRange pulls an embedded date-range token out of a line. Both
// sides are standardized; a present-word end maps to the Present sentinel.
func (p *EntryParser) extractDateRange(line string) (string, string, bool) {
	match := dateRangeLinePattern.FindStringSubmatch(line)
	if match == nil {
		// year-only ranges ("2019 - 2020", "2019 - Present") qualify too;
		// a bare year does not
		if m := yearLinePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil && m[2] != "" {
			match = m
		} else {
			return "", "", false
		}
	}
	end := strings.TrimSpace(match[2])
	switch {
	case dates.IsPresent(end):
		end = "Present"
	case yearTokenPattern.MatchString(end):
		end = p.standardizer.StandardizeDate(end)
	default:
		// a bare word that is not a present-variant is not a date range
		return "", "", false
	}
	start := p.standardizer.StandardizeDate(strings.TrimSpace(match[1]))
	return start, end, true
}

// matchesText applies the rule's keyword lists to a free-form line
func (r subsectionRule) matchesText(line string) bool {
	return r.Matches(ResumeSection{Title: line, Level: r.level})
}

// splitTitleCompany splits a heading into (title, company) on " at ",
// falling back to " - ". Both sides are title-cased when the split succeeds;
// otherwise the company is Unknown and the heading is kept as the title.
func splitTitleCompany(heading string) (string, string) {
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(heading, sep); idx > 0 {
			title := capitalizeWords(strings.TrimSpace(heading[:idx]))
			company := capitalizeWords(strings.TrimSpace(heading[idx+len(sep):]))
			if title != "" && company != "" {
				return title, company
			}
		}
	}
	return strings.TrimSpace(heading), UnknownField
}

func splitCategoryLine(line string) (string, []string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", nil, false
	}
	name := strings.TrimSpace(line[:idx])
	list := splitSkillList(line[idx+1:])
	if name == "" || len(list) == 0 {
		return "", nil, false
	}
	return name, list, true
}

func splitSkillList(raw string) []string {
	var skills []string
	for _, token := range skillDelimiterPattern.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}

// capitalizeWords upper-cases the first letter of each word, preserving the
// rest so names like "TechCorp" survive
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

func isCapitalized(line string) bool {
	if line == "" {
		return false
	}
	first := line[0]
	return first >= 'A' && first <= 'Z'
}
