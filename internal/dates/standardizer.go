// Package dates standardizes resume date strings into ATS-friendly canonical form.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthNames maps month tokens (full or abbreviated, lower-cased) to full names
var monthNames = map[string]string{
	"january": "January", "jan": "January",
	"february": "February", "feb": "February",
	"march": "March", "mar": "March",
	"april": "April", "apr": "April",
	"may":  "May",
	"june": "June", "jun": "June",
	"july": "July", "jul": "July",
	"august": "August", "aug": "August",
	"september": "September", "sep": "September", "sept": "September",
	"october": "October", "oct": "October",
	"november": "November", "nov": "November",
	"december": "December", "dec": "December",
}

// presentWords are end-date tokens treated as the "Present" sentinel
var presentWords = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// dateRule pairs a pattern with a handler that rewrites its capture groups
// into canonical form. Rules are tried in order, most specific first.
type dateRule struct {
	pattern *regexp.Regexp
	apply   func(groups []string) string
}

// Standardizer converts free-form date strings to canonical form.
// The zero value is not usable; construct with NewStandardizer.
type Standardizer struct {
	rules []dateRule
}

// NewStandardizer builds a standardizer with the ordered rule table
func NewStandardizer() *Standardizer {
	return &Standardizer{
		rules: []dateRule{
			{
				// "January 2020 - Present", "Jan 2020 - Dec 2021", "May 2020 - June"
				pattern: regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{4})\s*[-–—]\s*([A-Za-z]+|\d{4})(?:\s+(\d{4}))?`),
				apply:   applyMonthRange,
			},
			{
				// "2020 - 2021", "2020 - Present"
				pattern: regexp.MustCompile(`(?i)^(\d{4})\s*[-–—]\s*([A-Za-z]+|\d{4})`),
				apply:   applyYearRange,
			},
			{
				// "January 2020"
				pattern: regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{4})`),
				apply:   applyMonthYear,
			},
			{
				// "2020"
				pattern: regexp.MustCompile(`^(\d{4})$`),
				apply:   func(groups []string) string { return groups[1] },
			},
		},
	}
}

// StandardizeDate rewrites a date string into canonical form. Unrecognized
// input is returned trimmed but otherwise unchanged; the function never fails.
// Re-applying to its own output is a no-op.
func (s *Standardizer) StandardizeDate(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return cleaned
	}
	for _, rule := range s.rules {
		if groups := rule.pattern.FindStringSubmatch(cleaned); groups != nil {
			return rule.apply(groups)
		}
	}
	return cleaned
}

// StandardizeDateRange standardizes a start/end pair
func (s *Standardizer) StandardizeDateRange(start, end string) (string, string) {
	return s.StandardizeDate(start), s.StandardizeDate(end)
}

// ValidateDateOrder reports whether start precedes (or equals) end.
// A Present-variant end is always valid, and so is any pair from which a
// 4-digit year cannot be extracted on either side.
func (s *Standardizer) ValidateDateOrder(start, end string) bool {
	if IsPresent(end) {
		return true
	}
	startYear, okStart := extractYear(start)
	endYear, okEnd := extractYear(end)
	if !okStart || !okEnd {
		return true
	}
	return startYear <= endYear
}

// IsPresent reports whether the string is a Present-variant token
func IsPresent(value string) bool {
	return presentWords[strings.ToLower(strings.TrimSpace(value))]
}

func applyMonthRange(groups []string) string {
	startMonth := standardizeMonth(groups[1])
	startYear := groups[2]
	end := groups[3]
	endYear := groups[4]

	if IsPresent(end) {
		return fmt.Sprintf("%s %s - Present", startMonth, startYear)
	}
	if isYear(end) {
		return fmt.Sprintf("%s %s - %s", startMonth, startYear, end)
	}
	endMonth := standardizeMonth(end)
	if endYear != "" {
		return fmt.Sprintf("%s %s - %s %s", startMonth, startYear, endMonth, endYear)
	}
	return fmt.Sprintf("%s %s - %s", startMonth, startYear, endMonth)
}

func applyYearRange(groups []string) string {
	start := groups[1]
	end := groups[2]
	if IsPresent(end) {
		return fmt.Sprintf("%s - Present", start)
	}
	return fmt.Sprintf("%s - %s", start, end)
}

func applyMonthYear(groups []string) string {
	return fmt.Sprintf("%s %s", standardizeMonth(groups[1]), groups[2])
}

// standardizeMonth maps abbreviations to full month names; unrecognized
// tokens are title-cased and passed through
func standardizeMonth(token string) string {
	if full, ok := monthNames[strings.ToLower(strings.TrimSpace(token))]; ok {
		return full
	}
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}

func isYear(token string) bool {
	if len(token) != 4 {
		return false
	}
	_, err := strconv.Atoi(token)
	return err == nil
}

func extractYear(value string) (int, bool) {
	match := yearPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
