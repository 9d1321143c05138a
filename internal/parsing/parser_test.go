package parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeMarkdown = `# Jane Doe
jane.doe@example.com | (555) 123-4567
https://linkedin.com/in/janedoe

## Professional Summary
Senior software engineer with ten years of experience building
distributed systems and leading small teams.

## Work Experience

### Software Engineer at TechCorp
January 2020 - Present
- Designed and shipped the billing pipeline processing millions of events
- Mentored two junior engineers through promotion

### Junior Developer - StartupCo
June 2018 - December 2019
- Maintained the customer-facing web frontend

## Education

### Bachelor of Science in Computer Science
State University
2014 - 2018

## Technical Skills
Languages: Python, Go, Rust
Databases: PostgreSQL, Redis

## Volunteering
Taught weekend programming classes at the local library.
`

func TestParser_ParseFullResume(t *testing.T) {
	parser := NewParser(Options{})

	data, err := parser.Parse(sampleResumeMarkdown)
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "Jane Doe", data.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", data.Contact.Email)
	assert.Equal(t, "(555) 123-4567", data.Contact.Phone)
	assert.Equal(t, "https://linkedin.com/in/janedoe", data.Contact.LinkedIn)

	assert.Contains(t, data.Summary, "Senior software engineer")
	assert.NotContains(t, data.Summary, "\n")

	require.Len(t, data.Experience, 2)
	assert.Equal(t, "Software Engineer", data.Experience[0].Title)
	assert.Equal(t, "TechCorp", data.Experience[0].Company)
	assert.Equal(t, "January 2020", data.Experience[0].StartDate)
	assert.Equal(t, "Present", data.Experience[0].EndDate)
	assert.Len(t, data.Experience[0].Bullets, 2)
	assert.Equal(t, "StartupCo", data.Experience[1].Company)

	require.Len(t, data.Education, 1)
	assert.Equal(t, "Bachelor Of Science In Computer Science", data.Education[0].Degree)
	assert.Equal(t, "State University", data.Education[0].School)
	assert.Equal(t, "2014", data.Education[0].StartDate)
	assert.Equal(t, "2018", data.Education[0].EndDate)

	require.NotNil(t, data.Skills)
	require.Len(t, data.Skills.Categories, 2)
	assert.Equal(t, "Languages", data.Skills.Categories[0].Name)

	require.Contains(t, data.AdditionalSections, "volunteering")
	assert.Equal(t,
		[]string{"Taught weekend programming classes at the local library."},
		data.AdditionalSections["volunteering"])
}

func TestParser_EmptyContentIsStructuralError(t *testing.T) {
	parser := NewParser(Options{})

	for _, content := range []string{"", "   ", "\n\n\t"} {
		_, err := parser.Parse(content)
		require.Error(t, err)

		var parseErr *InvalidMarkdownError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, KindStructural, parseErr.Kind)
		assert.Contains(t, parseErr.Error(), "empty")
	}
}

func TestParser_MissingEmailIsStructuralError(t *testing.T) {
	parser := NewParser(Options{})

	_, err := parser.Parse("# Jane Doe\n\n## Experience\nSome role\n")
	require.Error(t, err)

	var parseErr *InvalidMarkdownError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, KindStructural, parseErr.Kind)
	assert.Contains(t, strings.ToLower(parseErr.Error()), "email")
}

func TestParser_SkipInputValidationStillRequiresEmail(t *testing.T) {
	parser := NewParser(Options{SkipInputValidation: true})

	_, err := parser.Parse("# Jane Doe\nJust a line of text\n")
	require.Error(t, err)

	var parseErr *InvalidMarkdownError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, KindStructural, parseErr.Kind)
}

func TestParser_ParseWithWarningsDoesNotEscalate(t *testing.T) {
	// short resume with no experience or education sections: plenty of
	// warnings, and in strict mode the empty sections become errors
	content := "# Jane Doe\njane@example.com\n\n## Summary\nHi.\n"

	strict := NewParser(Options{Strict: true})
	data, result, err := strict.ParseWithWarnings(content)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)

	// Parse escalates the same findings into an error
	_, err = strict.Parse(content)
	require.Error(t, err)
	var parseErr *InvalidMarkdownError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, KindValidation, parseErr.Kind)
}

func TestParser_NonStrictToleratesMissingSections(t *testing.T) {
	content := "# Jane Doe\njane@example.com\n\n## Summary\n" +
		"An experienced professional with a long history of education and more. " +
		strings.Repeat("More detail about the career. ", 4) + "\n"

	parser := NewParser(Options{})
	data, result, err := parser.ParseWithWarnings(content)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.True(t, result.Valid)
	assert.Empty(t, data.Experience)
}

func TestParser_DuplicateSectionLastWriteWins(t *testing.T) {
	content := `# Jane Doe
jane@example.com

## Summary
First version of the summary text, long enough to avoid brevity warnings.

## Experience
### Engineer at Acme
January 2020 - Present
- Did substantial work on the core product

## Education
### Bachelor of Science
State University
2012 - 2016

## Summary
Second version of the summary text, also long enough to read naturally.
`

	parser := NewParser(Options{})
	data, err := parser.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "Second version of the summary text, also long enough to read naturally.", data.Summary)
}

func TestParser_ParseIsDeterministic(t *testing.T) {
	parser := NewParser(Options{})

	first, err := parser.Parse(sampleResumeMarkdown)
	require.NoError(t, err)
	second, err := parser.Parse(sampleResumeMarkdown)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParser_ContactNeverEmptyOnSuccess(t *testing.T) {
	parser := NewParser(Options{})

	data, _, err := parser.ParseWithWarnings("jane@example.com\n\n## Experience\n### Engineer at Acme\nJanuary 2020 - Present\n- Shipped the product roadmap\n")
	require.NoError(t, err)
	assert.Equal(t, UnknownField, data.Contact.Name)
	assert.NotEmpty(t, data.Contact.Email)
}
