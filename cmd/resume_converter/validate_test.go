package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidateJSON(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(valid,
		[]byte(`{"contact": {"name": "Jane Doe", "email": "jane@example.com"}}`), 0644))
	assert.NoError(t, runValidateJSON(valid))

	invalid := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"contact": {"name": "Jane Doe"}}`), 0644))
	assert.Error(t, runValidateJSON(invalid))
}

func TestRunValidateCmd_MarkdownResume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.md")
	require.NoError(t, os.WriteFile(path, []byte(`# Jane Doe

jane@example.com | (555) 123-4567

## Summary

Backend engineer with eight years of experience building data pipelines.

## Experience

### Senior Engineer - Acme Corp

January 2020 - Present

- Led migration of billing services to a streaming architecture
- Reduced report generation time by 40 percent

## Education

### BS Computer Science

State University
2012 - 2016
`), 0644))

	assert.NoError(t, runValidateCmd(validateCommand, []string{path}))
}

func TestRunValidateCmd_MissingFile(t *testing.T) {
	err := runValidateCmd(validateCommand, []string{filepath.Join(t.TempDir(), "nope.md")})
	assert.Error(t, err)
}
