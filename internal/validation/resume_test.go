package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-converter/internal/types"
)

func validResume() *types.ResumeData {
	return &types.ResumeData{
		Contact: types.ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "(555) 123-4567",
		},
		Summary: "Senior engineer with a decade of experience.",
		Experience: []types.Experience{
			{
				Title:     "Software Engineer",
				Company:   "TechCorp",
				StartDate: "January 2020",
				EndDate:   "Present",
				Bullets: []string{
					"Designed and built the billing pipeline",
					"Led migration to the new platform",
					"Improved deploy times by sixty percent",
				},
			},
		},
		Education: []types.Education{
			{Degree: "Bachelor of Science", School: "State University", StartDate: "2014", EndDate: "2018"},
		},
		Skills: &types.Skills{RawSkills: []string{"Go", "Python"}},
	}
}

func TestValidateResume_CleanResumeHasNoFindings(t *testing.T) {
	result := NewResumeValidator(false).ValidateResume(validResume())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateResume_StrictCleanResumeStillValid(t *testing.T) {
	result := NewResumeValidator(true).ValidateResume(validResume())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateResume_ShortNameIsError(t *testing.T) {
	data := validResume()
	data.Contact.Name = "J"

	result := NewResumeValidator(false).ValidateResume(data)
	assert.False(t, result.Valid)
	assert.Contains(t, strings.Join(result.Errors, "\n"), "name must be at least 2 characters")
}

func TestValidateResume_EmptySectionsStrictVsLenient(t *testing.T) {
	data := validResume()
	data.Experience = nil
	data.Education = nil

	lenient := NewResumeValidator(false).ValidateResume(data)
	assert.True(t, lenient.Valid)
	joined := strings.Join(lenient.Warnings, "\n")
	assert.Contains(t, joined, "consider adding work experience")
	assert.Contains(t, joined, "consider adding education")

	strict := NewResumeValidator(true).ValidateResume(data)
	assert.False(t, strict.Valid)
	joined = strings.Join(strict.Errors, "\n")
	assert.Contains(t, joined, "at least 1 experience entry")
	assert.Contains(t, joined, "at least 1 education entry")
}

func TestValidateResume_BulletLengthBoundaries(t *testing.T) {
	validator := NewResumeValidator(false)
	require.Equal(t, 5, validator.MinBulletLength())

	data := validResume()
	data.Experience[0].Bullets = []string{
		"tiny",                              // below the boundary
		"right",                             // exactly at it
		strings.Repeat("x", 201),            // above the max
		"Built a perfectly reasonable item", // clean
	}

	result := validator.ValidateResume(data)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "bullet point is very short (4 chars)")
	assert.NotContains(t, joined, "(5 chars)")
	assert.Contains(t, joined, "bullet point is very long (201 chars)")
}

func TestValidateResume_StrictBulletBoundaryIsTen(t *testing.T) {
	validator := NewResumeValidator(true)
	require.Equal(t, 10, validator.MinBulletLength())

	data := validResume()
	data.Experience[0].Bullets = []string{"Built all", "Built more"} // 9 and 10 chars

	result := validator.ValidateResume(data)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "very short (9 chars)")
	assert.NotContains(t, joined, "(10 chars)")
}

func TestValidateResume_StrictActionVerbWarning(t *testing.T) {
	data := validResume()
	data.Experience[0].Bullets = []string{"Responsible for the payments team"}

	strict := NewResumeValidator(true).ValidateResume(data)
	assert.Contains(t, strings.Join(strict.Warnings, "\n"), "action verb")

	lenient := NewResumeValidator(false).ValidateResume(data)
	assert.NotContains(t, strings.Join(lenient.Warnings, "\n"), "action verb")
}

func TestValidateResume_DateFindings(t *testing.T) {
	t.Run("unrecognized format warns", func(t *testing.T) {
		data := validResume()
		data.Experience[0].StartDate = "sometime in 2020"
		data.Experience[0].EndDate = "December 2021"

		result := NewResumeValidator(false).ValidateResume(data)
		assert.True(t, result.Valid)
		assert.Contains(t, strings.Join(result.Warnings, "\n"), "format is not recognized")
	})

	t.Run("strict errors only when both sides unrecognized", func(t *testing.T) {
		data := validResume()
		data.Experience[0].StartDate = "whenever"
		data.Experience[0].EndDate = "later on"

		result := NewResumeValidator(true).ValidateResume(data)
		assert.False(t, result.Valid)
		assert.Contains(t, strings.Join(result.Errors, "\n"), "not in a recognized format")
	})

	t.Run("present end bypasses format checks", func(t *testing.T) {
		data := validResume()
		data.Experience[0].StartDate = "January 2020"
		data.Experience[0].EndDate = "ongoing"

		result := NewResumeValidator(true).ValidateResume(data)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("inverted order warns", func(t *testing.T) {
		data := validResume()
		data.Experience[0].StartDate = "January 2022"
		data.Experience[0].EndDate = "January 2020"

		result := NewResumeValidator(false).ValidateResume(data)
		assert.Contains(t, strings.Join(result.Warnings, "\n"), "is after end date")
	})

	t.Run("education date findings stay warnings in strict mode", func(t *testing.T) {
		data := validResume()
		data.Education[0].StartDate = "whenever"
		data.Education[0].EndDate = "later on"

		result := NewResumeValidator(true).ValidateResume(data)
		assert.True(t, result.Valid)
		assert.Contains(t, strings.Join(result.Warnings, "\n"), "not in a recognized format")
	})
}

func TestValidateResume_StructureWarnings(t *testing.T) {
	data := validResume()
	data.Summary = ""
	data.Skills = nil
	data.Experience[0].Bullets = data.Experience[0].Bullets[:2]

	result := NewResumeValidator(false).ValidateResume(data)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "professional summary")
	assert.Contains(t, joined, "skills section")
	assert.Contains(t, joined, "at least 3 achievement bullets")
}

func TestValidateResume_ContactLinkWarnings(t *testing.T) {
	data := validResume()
	data.Contact.LinkedIn = "https://example.com/janedoe"
	data.Contact.Phone = "12"

	result := NewResumeValidator(false).ValidateResume(data)
	assert.True(t, result.Valid)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "linkedin.com")
	assert.Contains(t, joined, "phone number format")
}

func TestValidateResume_LinkHostMustBeURLPrefix(t *testing.T) {
	data := validResume()
	data.Contact.LinkedIn = "http://evil.com/linkedin.com"
	data.Contact.GitHub = "https://evil.com/github.com/janedoe"

	result := NewResumeValidator(false).ValidateResume(data)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "linkedin URL")
	assert.Contains(t, joined, "github URL")

	data.Contact.LinkedIn = "https://www.linkedin.com/in/janedoe"
	data.Contact.GitHub = "https://github.com/janedoe"
	result = NewResumeValidator(false).ValidateResume(data)
	assert.Empty(t, result.Warnings)
}
