package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *ResumeData {
	return &ResumeData{
		Contact: ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "(555) 123-4567",
		},
		Summary: "Engineer with a decade of backend experience.",
		Experience: []Experience{
			{
				Title:     "Engineer",
				Company:   "Acme",
				StartDate: "January 2020",
				EndDate:   "Present",
				Bullets:   []string{"Did X", "Did Y"},
			},
		},
		Education: []Education{
			{Degree: "BS Computer Science", School: "State University", Honors: []string{"cum laude"}},
		},
		Skills: &Skills{
			Categories: []SkillCategory{{Name: "Languages", Skills: []string{"Python", "Go"}}},
		},
		AdditionalSections: map[string][]string{"volunteering": {"Food bank"}},
	}
}

func TestClone_DeepCopiesSlices(t *testing.T) {
	original := sampleResume()
	clone := original.Clone()

	clone.Experience[0].Bullets[0] = "Changed"
	clone.Skills.Categories[0].Skills[0] = "Rust"
	clone.Education[0].Honors[0] = "none"
	clone.AdditionalSections["volunteering"][0] = "Changed"
	clone.Contact.Name = "Someone Else"

	assert.Equal(t, "Did X", original.Experience[0].Bullets[0])
	assert.Equal(t, "Python", original.Skills.Categories[0].Skills[0])
	assert.Equal(t, "cum laude", original.Education[0].Honors[0])
	assert.Equal(t, "Food bank", original.AdditionalSections["volunteering"][0])
	assert.Equal(t, "Jane Doe", original.Contact.Name)
}

func TestClone_PreservesContent(t *testing.T) {
	original := sampleResume()
	clone := original.Clone()
	assert.Equal(t, original, clone)
}

func TestClone_NilOptionalSections(t *testing.T) {
	original := &ResumeData{Contact: ContactInfo{Name: "A B", Email: "a@b.co"}}
	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Skills)
	assert.Nil(t, clone.Experience)
	assert.Nil(t, clone.AdditionalSections)
}

func TestHasSkills(t *testing.T) {
	assert.False(t, (&Skills{}).HasSkills())
	assert.True(t, (&Skills{RawSkills: []string{"Go"}}).HasSkills())
	assert.True(t, (&Skills{Categories: []SkillCategory{{Name: "Langs", Skills: []string{"Go"}}}}).HasSkills())
}

func TestAllSections_OrderAndPresence(t *testing.T) {
	data := sampleResume()
	sections := data.AllSections()
	assert.Equal(t, []string{"contact", "summary", "experience", "education", "skills", "volunteering"}, sections)
}

func TestAllSections_ContactOnly(t *testing.T) {
	data := &ResumeData{Contact: ContactInfo{Name: "A B", Email: "a@b.co"}}
	assert.Equal(t, []string{"contact"}, data.AllSections())
}

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult(nil, []string{"minor"})
	assert.True(t, result.Valid)

	result = NewValidationResult([]string{"bad"}, nil)
	assert.False(t, result.Valid)
}

func TestValidationResult_Merge(t *testing.T) {
	result := NewValidationResult(nil, []string{"w1"})
	result.Merge(NewValidationResult([]string{"e1"}, []string{"w2"}))
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"e1"}, result.Errors)
	assert.Equal(t, []string{"w1", "w2"}, result.Warnings)
}
