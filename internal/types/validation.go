// Package types provides type definitions for structured resume data used throughout the resume-converter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ValidationResult is the outcome of a non-throwing validation pass.
// Errors make the result invalid; warnings never do.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewValidationResult builds a result whose Valid flag is derived from the error list
func NewValidationResult(errors, warnings []string) ValidationResult {
	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// Merge combines another result into this one, recomputing the Valid flag
func (v *ValidationResult) Merge(other ValidationResult) {
	v.Errors = append(v.Errors, other.Errors...)
	v.Warnings = append(v.Warnings, other.Warnings...)
	v.Valid = len(v.Errors) == 0
}
