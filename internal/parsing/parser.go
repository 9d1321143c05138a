package parsing

import (
	"strings"

	"github.com/jonathan/resume-converter/internal/dates"
	"github.com/jonathan/resume-converter/internal/formatting"
	"github.com/jonathan/resume-converter/internal/types"
	"github.com/jonathan/resume-converter/internal/validation"
)

// Options configures a Parser. The zero value validates input and uses
// non-strict post-parse validation.
type Options struct {
	SkipInputValidation bool
	Strict              bool
}

// Parser converts markdown resume text into a ResumeData aggregate. Each
// parse is stateless and in-memory; a Parser is safe to reuse sequentially
// and cheap enough to construct per document.
type Parser struct {
	options   Options
	contacts  *ContactExtractor
	entries   *EntryParser
	validator *validation.ResumeValidator
}

// NewParser builds a parser with the given options
func NewParser(options Options) *Parser {
	return &Parser{
		options:   options,
		contacts:  NewContactExtractor(),
		entries:   NewEntryParser(dates.NewStandardizer()),
		validator: validation.NewResumeValidator(options.Strict),
	}
}

// Parse converts markdown into a ResumeData aggregate. Post-parse validation
// errors are escalated into an InvalidMarkdownError; use ParseWithWarnings to
// receive findings without escalation.
func (p *Parser) Parse(content string) (*types.ResumeData, error) {
	data, result, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, &InvalidMarkdownError{
			Kind:      KindValidation,
			Component: "ResumeValidator",
			Message:   strings.Join(result.Errors, "; "),
		}
	}
	return data, nil
}

// ParseWithWarnings converts markdown and returns the aggregate together
// with all accumulated validation findings. Error-level findings are not
// escalated; only true structural failures return an error.
func (p *Parser) ParseWithWarnings(content string) (*types.ResumeData, types.ValidationResult, error) {
	return p.parse(content)
}

func (p *Parser) parse(content string) (*types.ResumeData, types.ValidationResult, error) {
	var findings types.ValidationResult
	findings.Valid = true

	if strings.TrimSpace(content) == "" {
		return nil, findings, &InvalidMarkdownError{
			Kind:      KindStructural,
			Component: "Parser",
			Message:   "resume content is empty",
		}
	}

	if !p.options.SkipInputValidation {
		structure := validation.ValidateMarkdownStructure(content)
		findings.Merge(structure)
		if !structure.Valid {
			return nil, findings, &InvalidMarkdownError{
				Kind:      KindStructural,
				Component: "Parser",
				Message:   strings.Join(structure.Errors, "; "),
			}
		}
	}

	contact, err := p.contacts.Extract(content)
	if err != nil {
		return nil, findings, err
	}

	sections := RenderSections([]byte(content))
	data := p.assemble(contact, sections)

	result := p.validator.ValidateResume(data)
	findings.Merge(result)

	return data, findings, nil
}

// aggregate pairs a recognized top-level section with the deeper headings
// that follow it in document order
type aggregate struct {
	section     ResumeSection
	subsections []ResumeSection
}

// assemble folds the ordered section list into the aggregate root. Headings
// at level 1-2 open a new aggregate (classified through the header synonym
// table); deeper headings attach to the aggregate they follow.
func (p *Parser) assemble(contact types.ContactInfo, sections []ResumeSection) *types.ResumeData {
	data := &types.ResumeData{Contact: contact}

	grouped := make(map[string]*aggregate)
	var other []*aggregate
	var current *aggregate

	for _, section := range sections {
		if section.Level <= 2 {
			agg := &aggregate{section: section}
			current = agg
			if section.Level == 1 {
				// the name heading; its contact lines were handled by the extractor
				continue
			}
			switch category := formatting.CategoryForHeader(section.Key); category {
			case "":
				other = append(other, agg)
			case "contact":
				// already consumed by the whole-document contact scan
			default:
				grouped[category] = agg
			}
			continue
		}
		if current != nil {
			current.subsections = append(current.subsections, section)
		}
	}

	if agg, ok := grouped["summary"]; ok {
		data.Summary = strings.Join(agg.section.Content, " ")
	}
	if agg, ok := grouped["experience"]; ok {
		data.Experience = p.entries.ParseExperience(agg.section, agg.subsections)
	}
	if agg, ok := grouped["education"]; ok {
		data.Education = p.entries.ParseEducation(agg.section, agg.subsections)
	}
	if agg, ok := grouped["skills"]; ok {
		data.Skills = p.entries.ParseSkills(agg.section, agg.subsections)
	}

	if agg, ok := grouped["projects"]; ok {
		data.Projects = p.entries.ParseProjects(agg.section, agg.subsections)
	}
	if agg, ok := grouped["certifications"]; ok {
		data.Certifications = p.entries.ParseCertifications(agg.section, agg.subsections)
	}

	// unrecognized sections are carried as named content blocks for
	// downstream rendering
	carry := func(key string, agg *aggregate) {
		lines := append([]string{}, agg.section.Content...)
		for _, sub := range agg.subsections {
			lines = append(lines, sub.Title)
			lines = append(lines, sub.Content...)
		}
		if len(lines) == 0 {
			return
		}
		if data.AdditionalSections == nil {
			data.AdditionalSections = make(map[string][]string)
		}
		data.AdditionalSections[key] = lines
	}
	for _, agg := range other {
		carry(agg.section.Key, agg)
	}

	return data
}
