package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-converter/internal/formatting"
	"github.com/jonathan/resume-converter/internal/types"
)

// RenderText produces a plain-text resume in the configured section order.
// Bullets carry the configured bullet style; section headers are upper-cased
// standard forms.
func RenderText(data *types.ResumeData, config formatting.ATSConfig) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "resume data is nil"}
	}

	bullet := config.BulletStyle
	if bullet == "" {
		bullet = formatting.DefaultATSConfig().BulletStyle
	}
	order := config.SectionOrder
	if len(order) == 0 {
		order = formatting.DefaultSectionOrder()
	}

	var sb strings.Builder

	for _, section := range order {
		switch section {
		case "contact":
			writeContact(&sb, data.Contact)
		case "summary":
			if data.Summary != "" {
				writeHeader(&sb, "summary")
				sb.WriteString(data.Summary)
				sb.WriteString("\n")
			}
		case "experience":
			if len(data.Experience) > 0 {
				writeHeader(&sb, "experience")
				for _, exp := range data.Experience {
					writeExperience(&sb, exp, bullet)
				}
			}
		case "education":
			if len(data.Education) > 0 {
				writeHeader(&sb, "education")
				for _, edu := range data.Education {
					writeEducation(&sb, edu)
				}
			}
		case "skills":
			if data.Skills != nil && data.Skills.HasSkills() {
				writeHeader(&sb, "skills")
				writeSkills(&sb, data.Skills)
			}
		case "projects":
			if len(data.Projects) > 0 {
				writeHeader(&sb, "projects")
				for _, project := range data.Projects {
					writeProject(&sb, project, bullet)
				}
			}
		case "certifications":
			if len(data.Certifications) > 0 {
				writeHeader(&sb, "certifications")
				for _, cert := range data.Certifications {
					writeCertification(&sb, cert)
				}
			}
		}
	}

	// free-form sections go last, in the aggregate's canonical order
	for _, name := range additionalSectionNames(data) {
		writeHeader(&sb, name)
		for _, line := range data.AdditionalSections[name] {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

func writeHeader(sb *strings.Builder, section string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	header := strings.ToUpper(formatting.StandardizeHeader(section))
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", len(header)))
	sb.WriteString("\n")
}

func writeContact(sb *strings.Builder, contact types.ContactInfo) {
	sb.WriteString(contact.Name)
	sb.WriteString("\n")

	details := []string{contact.Email}
	for _, field := range []string{contact.Phone, contact.Location} {
		if field != "" {
			details = append(details, field)
		}
	}
	sb.WriteString(strings.Join(details, " | "))
	sb.WriteString("\n")

	for _, link := range []string{contact.LinkedIn, contact.GitHub, contact.Website} {
		if link != "" {
			sb.WriteString(link)
			sb.WriteString("\n")
		}
	}
}

func writeExperience(sb *strings.Builder, exp types.Experience, bullet string) {
	fmt.Fprintf(sb, "%s, %s\n", exp.Title, exp.Company)
	fmt.Fprintf(sb, "%s - %s\n", exp.StartDate, exp.EndDate)
	if exp.Location != "" {
		sb.WriteString(exp.Location)
		sb.WriteString("\n")
	}
	for _, line := range exp.Bullets {
		writeBullet(sb, line, bullet)
	}
	sb.WriteString("\n")
}

func writeEducation(sb *strings.Builder, edu types.Education) {
	fmt.Fprintf(sb, "%s, %s\n", edu.Degree, edu.School)
	switch {
	case edu.StartDate != "" && edu.EndDate != "":
		fmt.Fprintf(sb, "%s - %s\n", edu.StartDate, edu.EndDate)
	case edu.EndDate != "":
		sb.WriteString(edu.EndDate)
		sb.WriteString("\n")
	}
	if edu.GPA != "" {
		fmt.Fprintf(sb, "GPA: %s\n", edu.GPA)
	}
	if len(edu.Honors) > 0 {
		fmt.Fprintf(sb, "Honors: %s\n", strings.Join(edu.Honors, ", "))
	}
	sb.WriteString("\n")
}

func writeSkills(sb *strings.Builder, skills *types.Skills) {
	for _, category := range skills.Categories {
		fmt.Fprintf(sb, "%s: %s\n", category.Name, strings.Join(category.Skills, ", "))
	}
	if len(skills.RawSkills) > 0 {
		sb.WriteString(strings.Join(skills.RawSkills, ", "))
		sb.WriteString("\n")
	}
}

func writeProject(sb *strings.Builder, project types.Project, bullet string) {
	sb.WriteString(project.Name)
	if project.Date != "" {
		fmt.Fprintf(sb, " (%s)", project.Date)
	}
	sb.WriteString("\n")
	if project.Description != "" {
		sb.WriteString(project.Description)
		sb.WriteString("\n")
	}
	if len(project.Technologies) > 0 {
		fmt.Fprintf(sb, "Technologies: %s\n", strings.Join(project.Technologies, ", "))
	}
	for _, line := range project.Bullets {
		writeBullet(sb, line, bullet)
	}
	sb.WriteString("\n")
}

func writeCertification(sb *strings.Builder, cert types.Certification) {
	parts := []string{cert.Name, cert.Issuer, cert.Date}
	sb.WriteString(strings.Join(parts, " - "))
	sb.WriteString("\n")
}

// writeBullet prefixes each wrapped line so multi-line bullets stay aligned
// under their marker
func writeBullet(sb *strings.Builder, text, bullet string) {
	lines := strings.Split(text, "\n")
	fmt.Fprintf(sb, "%s %s\n", bullet, lines[0])
	for _, cont := range lines[1:] {
		fmt.Fprintf(sb, "%s%s\n", strings.Repeat(" ", len(bullet)+1), cont)
	}
}

func additionalSectionNames(data *types.ResumeData) []string {
	if len(data.AdditionalSections) == 0 {
		return nil
	}
	skip := make(map[string]bool)
	for _, section := range formatting.DefaultSectionOrder() {
		skip[section] = true
	}
	var names []string
	for _, section := range data.AllSections() {
		if !skip[section] {
			if _, ok := data.AdditionalSections[section]; ok {
				names = append(names, section)
			}
		}
	}
	return names
}
