package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-converter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	data := &types.ResumeData{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "(555) 123-4567"},
		Summary: "Engineer.",
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "January 2020", EndDate: "Present"},
		},
		Education: []types.Education{
			{Degree: "BS", School: "State University"},
		},
		Skills: &types.Skills{
			Categories: []types.SkillCategory{{Name: "Languages", Skills: []string{"Go"}}},
		},
	}

	p.PrintResumeSummary(data)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Engineer, Acme")
	assert.Contains(t, output, "State University")
	assert.Contains(t, output, "Languages")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(types.NewValidationResult(
		[]string{"name must be at least 2 characters long"},
		[]string{"consider adding a skills section"},
	))
	output := buf.String()

	assert.Contains(t, output, "VALIDATION")
	assert.Contains(t, output, "Errors (1):")
	assert.Contains(t, output, "Warnings (1):")
	assert.Contains(t, output, "name must be at least 2")
}

func TestPrintValidationReport_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(types.NewValidationResult(nil, nil))

	assert.Contains(t, buf.String(), "No findings.")
}

func TestPrintValidationReport_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := make([]string, 9)
	for i := range warnings {
		warnings[i] = "warning"
	}
	p.PrintValidationReport(types.NewValidationResult(nil, warnings))

	assert.Contains(t, buf.String(), "... and 4 more")
}

func TestPrintOutputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutputs([]string{"out/resume.txt", "out/resume.html"})
	output := buf.String()

	assert.Contains(t, output, "GENERATED FILES")
	assert.Contains(t, output, "out/resume.txt")

	buf.Reset()
	p.PrintOutputs(nil)
	assert.Empty(t, buf.String())
}
