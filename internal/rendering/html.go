package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-converter/internal/types"
)

// resumeTemplate is the built-in single-page layout. It is deliberately
// plain: ATS parsers read linear HTML far better than styled layouts.
const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: Georgia, serif; max-width: 48em; margin: 2em auto; color: #222; }
h1 { margin-bottom: 0.1em; }
h2 { border-bottom: 1px solid #999; padding-bottom: 0.2em; }
.contact { color: #555; }
.entry-head { font-weight: bold; }
.dates { color: #555; font-style: italic; }
ul { margin-top: 0.3em; }
</style>
</head>
<body>
<header>
<h1>{{.Contact.Name}}</h1>
<p class="contact">{{.Contact.Email}}{{if .Contact.Phone}} | {{.Contact.Phone}}{{end}}{{if .Contact.Location}} | {{.Contact.Location}}{{end}}</p>
{{if or .Contact.LinkedIn .Contact.GitHub .Contact.Website}}<p class="contact">
{{- if .Contact.LinkedIn}}<a href="{{.Contact.LinkedIn}}">{{.Contact.LinkedIn}}</a> {{end}}
{{- if .Contact.GitHub}}<a href="{{.Contact.GitHub}}">{{.Contact.GitHub}}</a> {{end}}
{{- if .Contact.Website}}<a href="{{.Contact.Website}}">{{.Contact.Website}}</a>{{end}}</p>{{end}}
</header>
{{if .Summary}}<section id="summary">
<h2>Summary</h2>
<p>{{.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section id="experience">
<h2>Experience</h2>
{{range .Experience}}<div class="entry">
<p class="entry-head">{{.Title}}, {{.Company}}</p>
<p class="dates">{{.StartDate}} - {{.EndDate}}{{if .Location}} | {{.Location}}{{end}}</p>
{{if .Bullets}}<ul>
{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Education}}<section id="education">
<h2>Education</h2>
{{range .Education}}<div class="entry">
<p class="entry-head">{{.Degree}}, {{.School}}</p>
{{if or .StartDate .EndDate}}<p class="dates">{{if .StartDate}}{{.StartDate}} - {{end}}{{.EndDate}}</p>{{end}}
{{if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}
</div>
{{end}}</section>{{end}}
{{if .HasSkills}}<section id="skills">
<h2>Skills</h2>
{{range .Skills.Categories}}<p><strong>{{.Name}}:</strong> {{join .Skills}}</p>
{{end}}{{if .Skills.RawSkills}}<p>{{join .Skills.RawSkills}}</p>{{end}}
</section>{{end}}
{{if .Projects}}<section id="projects">
<h2>Projects</h2>
{{range .Projects}}<div class="entry">
<p class="entry-head">{{.Name}}{{if .Date}} ({{.Date}}){{end}}</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Technologies}}<p><strong>Technologies:</strong> {{join .Technologies}}</p>{{end}}
{{if .Bullets}}<ul>
{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Certifications}}<section id="certifications">
<h2>Certifications</h2>
{{range .Certifications}}<p>{{.Name}} - {{.Issuer}} - {{.Date}}</p>
{{end}}</section>{{end}}
{{range $name, $lines := .AdditionalSections}}<section>
<h2>{{$name}}</h2>
{{range $lines}}<p>{{.}}</p>
{{end}}</section>
{{end}}
</body>
</html>
`

// htmlData wraps the resume so the template can test skills presence without
// a nil dereference
type htmlData struct {
	*types.ResumeData
}

// HasSkills reports whether the skills section should render
func (d htmlData) HasSkills() bool {
	return d.Skills != nil && d.Skills.HasSkills()
}

// RenderHTML produces a standalone HTML document for the resume
func RenderHTML(data *types.ResumeData) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "resume data is nil"}
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
	}).Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, htmlData{ResumeData: data}); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return sb.String(), nil
}
