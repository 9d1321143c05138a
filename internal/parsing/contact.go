package parsing

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-converter/internal/types"
)

// UnknownField is the sentinel used when a heuristic finds nothing for a
// field that must still carry a value.
const UnknownField = "Unknown"

var (
	h1Pattern    = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	emailPattern = regexp.MustCompile(`[\w._%+-]+@[\w.-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`https?://[^\s)\]>]+`)

	// phonePatterns is an ordered rule table; the first pattern with a match
	// wins, so the order is part of the extraction contract.
	phonePatterns = []*regexp.Regexp{
		// US format with parenthesized area code: (555) 123-4567
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		// international with country code: +1-555-123-4567, +44 20 7946 0958
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
		// plain dash/dot separated: 555-123-4567, 555.123.4567
		regexp.MustCompile(`\d{3}[-.]\d{3}[-.]\d{4}`),
	}
)

// ContactExtractor pulls contact details out of the raw document with
// regex heuristics. Only the email is mandatory.
type ContactExtractor struct {
	validate *validator.Validate
}

// NewContactExtractor creates an extractor with a struct validator attached
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{validate: validator.New()}
}

// Extract scans the whole document for contact fields. A document with no
// findable email is a fatal structural failure.
func (x *ContactExtractor) Extract(document string) (types.ContactInfo, error) {
	contact := types.ContactInfo{Name: UnknownField}

	if match := h1Pattern.FindStringSubmatch(document); match != nil {
		contact.Name = strings.TrimSpace(match[1])
	}

	email := emailPattern.FindString(document)
	if email == "" {
		return types.ContactInfo{}, &InvalidMarkdownError{
			Kind:      KindStructural,
			Component: "ContactExtractor",
			Message:   "email address not found in resume",
		}
	}
	contact.Email = email

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(document); phone != "" {
			contact.Phone = phone
			break
		}
	}

	for _, url := range urlPattern.FindAllString(document, -1) {
		switch {
		case strings.Contains(url, "linkedin.com"):
			if contact.LinkedIn == "" {
				contact.LinkedIn = url
			}
		case strings.Contains(url, "github.com"):
			if contact.GitHub == "" {
				contact.GitHub = url
			}
		default:
			if contact.Website == "" {
				contact.Website = url
			}
		}
	}

	if err := x.validate.Struct(contact); err != nil {
		return types.ContactInfo{}, &InvalidMarkdownError{
			Kind:      KindStructural,
			Component: "ContactExtractor",
			Message:   "extracted contact info failed validation (email required)",
			Cause:     err,
		}
	}

	return contact, nil
}
