package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-converter/internal/formatting"
	"github.com/jonathan/resume-converter/internal/types"
)

func renderableResume() *types.ResumeData {
	return &types.ResumeData{
		Contact: types.ContactInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "(555) 123-4567",
			LinkedIn: "https://linkedin.com/in/janedoe",
		},
		Summary: "Senior engineer with ten years of experience.",
		Experience: []types.Experience{
			{
				Title:     "Software Engineer",
				Company:   "TechCorp",
				StartDate: "January 2020",
				EndDate:   "Present",
				Bullets:   []string{"Built the billing pipeline", "Led a team of five"},
			},
		},
		Education: []types.Education{
			{Degree: "Bachelor of Science", School: "State University", StartDate: "2014", EndDate: "2018"},
		},
		Skills: &types.Skills{
			Categories: []types.SkillCategory{{Name: "Languages", Skills: []string{"Go", "Python"}}},
		},
		AdditionalSections: map[string][]string{
			"Volunteering": {"Taught weekend classes."},
		},
	}
}

func TestRenderText_FullResume(t *testing.T) {
	output, err := RenderText(renderableResume(), formatting.DefaultATSConfig())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "Jane Doe\n"))
	assert.Contains(t, output, "jane@example.com | (555) 123-4567")
	assert.Contains(t, output, "https://linkedin.com/in/janedoe")
	assert.Contains(t, output, "SUMMARY\n")
	assert.Contains(t, output, "EXPERIENCE\n")
	assert.Contains(t, output, "Software Engineer, TechCorp\nJanuary 2020 - Present\n")
	assert.Contains(t, output, "• Built the billing pipeline\n")
	assert.Contains(t, output, "Bachelor of Science, State University\n2014 - 2018\n")
	assert.Contains(t, output, "Languages: Go, Python\n")
	assert.Contains(t, output, "VOLUNTEERING\n")
	assert.Contains(t, output, "Taught weekend classes.")
}

func TestRenderText_SectionOrderRespected(t *testing.T) {
	config := formatting.DefaultATSConfig()
	config.SectionOrder = []string{"contact", "skills", "experience"}

	output, err := RenderText(renderableResume(), config)
	require.NoError(t, err)

	skillsAt := strings.Index(output, "SKILLS")
	expAt := strings.Index(output, "EXPERIENCE")
	require.Positive(t, skillsAt)
	require.Positive(t, expAt)
	assert.Less(t, skillsAt, expAt)
	// sections dropped from the order do not render, free-form sections still do
	assert.NotContains(t, output, "EDUCATION")
	assert.Contains(t, output, "VOLUNTEERING")
}

func TestRenderText_BulletStyle(t *testing.T) {
	config := formatting.DefaultATSConfig()
	config.BulletStyle = "-"

	output, err := RenderText(renderableResume(), config)
	require.NoError(t, err)
	assert.Contains(t, output, "- Built the billing pipeline")
	assert.NotContains(t, output, "• ")
}

func TestRenderText_WrappedBulletContinuationIndented(t *testing.T) {
	data := renderableResume()
	data.Experience[0].Bullets = []string{"First line of the bullet\ncontinued on the next"}

	output, err := RenderText(data, formatting.DefaultATSConfig())
	require.NoError(t, err)
	assert.Contains(t, output, "• First line of the bullet\n  continued on the next\n")
}

func TestRenderText_EmptySectionsSkipped(t *testing.T) {
	data := renderableResume()
	data.Summary = ""
	data.Skills = nil
	data.AdditionalSections = nil

	output, err := RenderText(data, formatting.DefaultATSConfig())
	require.NoError(t, err)
	assert.NotContains(t, output, "SUMMARY")
	assert.NotContains(t, output, "SKILLS")
}

func TestRenderText_NilData(t *testing.T) {
	_, err := RenderText(nil, formatting.DefaultATSConfig())
	require.Error(t, err)
	assert.IsType(t, &RenderError{}, err)
}

func TestRenderText_ZeroConfigUsesDefaults(t *testing.T) {
	output, err := RenderText(renderableResume(), formatting.ATSConfig{})
	require.NoError(t, err)
	assert.Contains(t, output, "• Built the billing pipeline")
	assert.Contains(t, output, "EDUCATION")
}
