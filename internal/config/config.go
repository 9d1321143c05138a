// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-converter/internal/formatting"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input     string `json:"input,omitempty"`      // Path to input markdown resume
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated output files

	// Output
	Formats []string `json:"formats,omitempty" validate:"dive,oneof=text html pdf json"` // Output formats to generate

	// Formatting
	MaxLineLength      int      `json:"max_line_length,omitempty" validate:"gte=0"`
	BulletStyle        string   `json:"bullet_style,omitempty" validate:"omitempty,oneof=• - *"`
	SectionOrder       []string `json:"section_order,omitempty"`
	OptimizeKeywords   *bool    `json:"optimize_keywords,omitempty"`
	RemoveSpecialChars *bool    `json:"remove_special_chars,omitempty"`

	// Behavior
	Strict      bool   `json:"strict,omitempty"`       // Strict post-parse validation
	Workers     int    `json:"workers,omitempty"`      // Batch conversion concurrency
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for conversion history
}

// DefaultFormats are generated when neither config nor flags name any
func DefaultFormats() []string {
	return []string{"text", "html"}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; they are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			return fmt.Errorf("config error: field %q has invalid value %v", field.StructField(), field.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	for _, section := range c.SectionOrder {
		if !knownSection(section) {
			return fmt.Errorf("config error: unknown section %q in section_order", section)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.BulletStyle == "" {
		result.BulletStyle = defaults.BulletStyle
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.Formats) == 0 {
		result.Formats = defaults.Formats
	}
	if len(result.SectionOrder) == 0 {
		result.SectionOrder = defaults.SectionOrder
	}

	if result.MaxLineLength == 0 {
		result.MaxLineLength = defaults.MaxLineLength
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	if result.OptimizeKeywords == nil {
		result.OptimizeKeywords = defaults.OptimizeKeywords
	}
	if result.RemoveSpecialChars == nil {
		result.RemoveSpecialChars = defaults.RemoveSpecialChars
	}

	// plain bool fields cannot distinguish unset from false, so we don't
	// merge them (CLI flags should always win)

	return result
}

// ATSConfig converts the loaded configuration into formatter settings,
// falling back to the formatter defaults for anything unset
func (c *Config) ATSConfig() formatting.ATSConfig {
	ats := formatting.DefaultATSConfig()
	if c.MaxLineLength > 0 {
		ats.MaxLineLength = c.MaxLineLength
	}
	if c.BulletStyle != "" {
		ats.BulletStyle = c.BulletStyle
	}
	if len(c.SectionOrder) > 0 {
		ats.SectionOrder = append([]string{}, c.SectionOrder...)
	}
	if c.OptimizeKeywords != nil {
		ats.OptimizeKeywords = *c.OptimizeKeywords
	}
	if c.RemoveSpecialChars != nil {
		ats.RemoveSpecialChars = *c.RemoveSpecialChars
	}
	return ats
}

func knownSection(section string) bool {
	for _, known := range formatting.DefaultSectionOrder() {
		if section == known {
			return true
		}
	}
	return false
}
