// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-converter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", data.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", data.Contact.Email))
	if data.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", data.Contact.Phone))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(data.AllSections(), ", ")))

	if len(data.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience (%d):\n", len(data.Experience)))
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s - %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
	}

	if len(data.Education) > 0 {
		sb.WriteString(fmt.Sprintf("\nEducation (%d):\n", len(data.Education)))
		count := min(len(data.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", data.Education[i].Degree, data.Education[i].School))
		}
	}

	if data.Skills != nil && data.Skills.HasSkills() {
		names := make([]string, 0, len(data.Skills.Categories))
		for _, category := range data.Skills.Categories {
			names = append(names, category.Name)
		}
		if len(names) > 0 {
			sb.WriteString(fmt.Sprintf("\nSkill categories: %s\n", strings.Join(names, ", ")))
		}
		if len(data.Skills.RawSkills) > 0 {
			sb.WriteString(fmt.Sprintf("Uncategorized skills: %d\n", len(data.Skills.RawSkills)))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs validation findings grouped by severity.
func (p *Printer) PrintValidationReport(result types.ValidationResult) {
	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		p.printBox("VALIDATION", "No findings.")
		return
	}

	var sb strings.Builder

	if len(result.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(result.Errors)))
		for _, finding := range truncateList(result.Errors, maxItemsToShow) {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", finding))
		}
		sb.WriteString("\n")
	}
	if len(result.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(result.Warnings)))
		for _, finding := range truncateList(result.Warnings, maxItemsToShow) {
			sb.WriteString(fmt.Sprintf("  ! %s\n", finding))
		}
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutputs lists the files a conversion produced.
func (p *Printer) PrintOutputs(paths []string) {
	if len(paths) == 0 {
		return
	}
	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s\n", path))
	}
	p.printBox("GENERATED FILES", strings.TrimSuffix(sb.String(), "\n"))
}

func truncateList(items []string, limit int) []string {
	if len(items) <= limit {
		return items
	}
	out := append([]string{}, items[:limit]...)
	return append(out, fmt.Sprintf("... and %d more", len(items)-limit))
}
