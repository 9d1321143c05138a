// Package types provides type definitions for structured resume data used throughout the resume-converter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// ContactInfo holds the contact block extracted from the top of a resume.
// Name and Email are required; every parse that produces a ResumeData has both.
type ContactInfo struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// Clone returns an independent copy of the contact info
func (c *ContactInfo) Clone() ContactInfo {
	return *c
}

// Experience represents a single work experience entry.
// Dates are canonical strings ("January 2020", "Present") or "Unknown"
// when extraction found nothing.
type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Location  string   `json:"location,omitempty"`
	Bullets   []string `json:"bullets"`
}

// Clone returns an independent copy of the experience entry
func (e *Experience) Clone() Experience {
	clone := *e
	clone.Bullets = cloneStrings(e.Bullets)
	return clone
}

// Education represents a single education entry
type Education struct {
	Degree     string   `json:"degree"`
	School     string   `json:"school"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Location   string   `json:"location,omitempty"`
	GPA        string   `json:"gpa,omitempty"`
	Honors     []string `json:"honors,omitempty"`
	Coursework []string `json:"coursework,omitempty"`
}

// Clone returns an independent copy of the education entry
func (e *Education) Clone() Education {
	clone := *e
	clone.Honors = cloneStrings(e.Honors)
	clone.Coursework = cloneStrings(e.Coursework)
	return clone
}

// SkillCategory groups an ordered list of skills under a category name
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Clone returns an independent copy of the skill category
func (s *SkillCategory) Clone() SkillCategory {
	return SkillCategory{Name: s.Name, Skills: cloneStrings(s.Skills)}
}

// Skills holds categorized skills, a flat skill list, or both
type Skills struct {
	Categories []SkillCategory `json:"categories,omitempty"`
	RawSkills  []string        `json:"raw_skills,omitempty"`
}

// HasSkills reports whether any skills are defined
func (s *Skills) HasSkills() bool {
	return len(s.Categories) > 0 || len(s.RawSkills) > 0
}

// Clone returns an independent copy of the skills section
func (s *Skills) Clone() *Skills {
	clone := &Skills{RawSkills: cloneStrings(s.RawSkills)}
	if s.Categories != nil {
		clone.Categories = make([]SkillCategory, len(s.Categories))
		for i := range s.Categories {
			clone.Categories[i] = s.Categories[i].Clone()
		}
	}
	return clone
}

// Project represents an optional project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	URL          string   `json:"url,omitempty"`
	Date         string   `json:"date,omitempty"`
}

// Clone returns an independent copy of the project entry
func (p *Project) Clone() Project {
	clone := *p
	clone.Technologies = cloneStrings(p.Technologies)
	clone.Bullets = cloneStrings(p.Bullets)
	return clone
}

// Certification represents a professional certification
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// ResumeData is the aggregate root produced by a parse. Contact is always
// present with a non-empty name and email. Treat values as immutable:
// formatting stages operate on Clone() output, never in place.
type ResumeData struct {
	Contact            ContactInfo         `json:"contact" validate:"required"`
	Summary            string              `json:"summary,omitempty"`
	Experience         []Experience        `json:"experience"`
	Education          []Education         `json:"education"`
	Skills             *Skills             `json:"skills,omitempty"`
	Projects           []Project           `json:"projects,omitempty"`
	Certifications     []Certification     `json:"certifications,omitempty"`
	AdditionalSections map[string][]string `json:"additional_sections,omitempty"`
}

// Clone returns a deep copy of the resume data with no shared slices or maps
func (r *ResumeData) Clone() *ResumeData {
	clone := &ResumeData{
		Contact: r.Contact.Clone(),
		Summary: r.Summary,
	}
	if r.Experience != nil {
		clone.Experience = make([]Experience, len(r.Experience))
		for i := range r.Experience {
			clone.Experience[i] = r.Experience[i].Clone()
		}
	}
	if r.Education != nil {
		clone.Education = make([]Education, len(r.Education))
		for i := range r.Education {
			clone.Education[i] = r.Education[i].Clone()
		}
	}
	if r.Skills != nil {
		clone.Skills = r.Skills.Clone()
	}
	if r.Projects != nil {
		clone.Projects = make([]Project, len(r.Projects))
		for i := range r.Projects {
			clone.Projects[i] = r.Projects[i].Clone()
		}
	}
	if r.Certifications != nil {
		clone.Certifications = make([]Certification, len(r.Certifications))
		copy(clone.Certifications, r.Certifications)
	}
	if r.AdditionalSections != nil {
		clone.AdditionalSections = make(map[string][]string, len(r.AdditionalSections))
		for key, lines := range r.AdditionalSections {
			clone.AdditionalSections[key] = cloneStrings(lines)
		}
	}
	return clone
}

// AllSections returns the names of all populated sections in canonical order
func (r *ResumeData) AllSections() []string {
	sections := []string{"contact"}
	if r.Summary != "" {
		sections = append(sections, "summary")
	}
	if len(r.Experience) > 0 {
		sections = append(sections, "experience")
	}
	if len(r.Education) > 0 {
		sections = append(sections, "education")
	}
	if r.Skills != nil && r.Skills.HasSkills() {
		sections = append(sections, "skills")
	}
	if len(r.Projects) > 0 {
		sections = append(sections, "projects")
	}
	if len(r.Certifications) > 0 {
		sections = append(sections, "certifications")
	}
	extra := make([]string, 0, len(r.AdditionalSections))
	for key := range r.AdditionalSections {
		extra = append(extra, key)
	}
	sort.Strings(extra)
	return append(sections, extra...)
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
