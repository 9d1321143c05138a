package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandInputs_GlobAndDedupe(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	inputs, err := expandInputs([]string{
		filepath.Join(dir, "*.md"),
		filepath.Join(dir, "a.md"), // already matched by the glob
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}, inputs)
}

func TestExpandInputs_LiteralFallback(t *testing.T) {
	// A pattern with no matches is kept verbatim so the converter can
	// report the missing file itself.
	inputs, err := expandInputs([]string{"does-not-exist.md"})
	require.NoError(t, err)
	assert.Equal(t, []string{"does-not-exist.md"}, inputs)
}

func TestExpandInputs_BadPattern(t *testing.T) {
	_, err := expandInputs([]string{"["})
	assert.Error(t, err)
}

func TestLoadBatchConfig_FileValuesWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"formats": ["text", "json"],
		"max_line_length": 70,
		"bullet_style": "-",
		"workers": 2
	}`), 0644))

	batchConfigPath = path
	t.Cleanup(func() {
		batchConfigPath = ""
		require.NoError(t, batchCommand.Flags().Set("max-line-length", "0"))
	})

	cfg, err := loadBatchConfig(batchCommand)
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "json"}, cfg.Formats)
	assert.Equal(t, 70, cfg.MaxLineLength)
	assert.Equal(t, "-", cfg.BulletStyle)
	assert.Equal(t, 2, cfg.Workers)

	ats := cfg.ATSConfig()
	assert.Equal(t, 70, ats.MaxLineLength)
	assert.Equal(t, "-", ats.BulletStyle)

	// an explicit flag wins over the config file
	require.NoError(t, batchCommand.Flags().Set("max-line-length", "60"))
	cfg, err = loadBatchConfig(batchCommand)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.MaxLineLength)
	assert.Equal(t, "-", cfg.BulletStyle)
}
