package formatting

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeHeader_SynonymTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"experience", "Experience"},
		{"Work History", "Experience"},
		{"PROFESSIONAL EXPERIENCE", "Experience"},
		{"Professional Summary", "Summary"},
		{"objective", "Summary"},
		{"Academic Background", "Education"},
		{"Core Competencies", "Skills"},
		{"technologies", "Skills"},
		{"Licenses and Certifications", "Certifications"},
		{"Key Accomplishments", "Projects"},
		{"Contact Info", "Contact Information"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StandardizeHeader(tc.in), tc.in)
	}
}

func TestStandardizeHeader_CleansPunctuationAndSpacing(t *testing.T) {
	assert.Equal(t, "Experience", StandardizeHeader("  Work   History:  "))
	assert.Equal(t, "Experience", StandardizeHeader("work experience."))
}

func TestStandardizeHeader_UnknownTitleCased(t *testing.T) {
	assert.Equal(t, "Volunteer Work", StandardizeHeader("volunteer WORK"))
	assert.Equal(t, "Publications", StandardizeHeader("publications"))
	assert.Equal(t, "", StandardizeHeader(""))
}

func TestStandardizeHeader_MultibyteLeadingLetterTitleCased(t *testing.T) {
	got := StandardizeHeader("études à l'étranger")
	assert.Equal(t, "Études À L'étranger", got)
	assert.True(t, utf8.ValidString(got))
}

func TestCategoryForHeader(t *testing.T) {
	assert.Equal(t, "experience", CategoryForHeader("Employment History"))
	assert.Equal(t, "summary", CategoryForHeader("profile"))
	assert.Equal(t, "contact", CategoryForHeader("Personal Details"))
	assert.Equal(t, "", CategoryForHeader("Hobbies"))
}
