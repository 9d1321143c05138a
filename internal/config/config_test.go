package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"input": "resume.md",
		"output_dir": "out",
		"formats": ["text", "pdf"],
		"max_line_length": 72,
		"strict": true,
		"workers": 4
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.md", cfg.Input)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, []string{"text", "pdf"}, cfg.Formats)
	assert.Equal(t, 72, cfg.MaxLineLength)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := &Config{Formats: []string{"text", "docx"}}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_UnknownSection(t *testing.T) {
	cfg := &Config{SectionOrder: []string{"contact", "hobbies"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Input: "/nonexistent/resume.md"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	yes := true
	cfg := &Config{Input: "mine.md", Workers: 2}
	defaults := Config{
		Input:         "theirs.md",
		OutputDir:     "out",
		Formats:       []string{"html"},
		MaxLineLength: 72,
		Workers:       8,
		OptimizeKeywords: &yes,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.md", merged.Input)
	assert.Equal(t, "out", merged.OutputDir)
	assert.Equal(t, []string{"html"}, merged.Formats)
	assert.Equal(t, 72, merged.MaxLineLength)
	assert.Equal(t, 2, merged.Workers)
	require.NotNil(t, merged.OptimizeKeywords)
	assert.True(t, *merged.OptimizeKeywords)
}

func TestATSConfig_Conversion(t *testing.T) {
	no := false
	cfg := &Config{
		MaxLineLength:      60,
		BulletStyle:        "-",
		SectionOrder:       []string{"contact", "skills"},
		RemoveSpecialChars: &no,
	}

	ats := cfg.ATSConfig()
	assert.Equal(t, 60, ats.MaxLineLength)
	assert.Equal(t, "-", ats.BulletStyle)
	assert.Equal(t, []string{"contact", "skills"}, ats.SectionOrder)
	assert.False(t, ats.RemoveSpecialChars)
	assert.True(t, ats.OptimizeKeywords)
}

func TestATSConfig_ZeroValueUsesDefaults(t *testing.T) {
	ats := (&Config{}).ATSConfig()
	assert.Equal(t, 80, ats.MaxLineLength)
	assert.Equal(t, "•", ats.BulletStyle)
	assert.NotEmpty(t, ats.SectionOrder)
}
