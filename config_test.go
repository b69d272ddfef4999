package anxiety

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "% begin quote", cfg.OpenDirective)
	assert.Equal(t, "% end quote", cfg.CloseDirective)
	assert.Equal(t, ":/|[]{}!", cfg.IgnoredChars)
	assert.Equal(t, "!", cfg.CanonicalMarker)
	assert.Equal(t, 70, cfg.Width)
	assert.Equal(t, "chars", cfg.Granularity)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Run("overrides", func(t *testing.T) {
		file := writeFile(t, dir, "ok.toml", `
open_directive = "<!-- quote"
close_directive = "<!-- /quote"
width = 60
granularity = "words"
postprocess = ["squash-spaces-tabs", "nfc"]
`)
		cfg, err := LoadConfig(file)
		require.NoError(t, err)
		assert.Equal(t, "<!-- quote", cfg.OpenDirective)
		assert.Equal(t, "<!-- /quote", cfg.CloseDirective)
		assert.Equal(t, DefaultIgnoredChars, cfg.IgnoredChars)
		assert.Equal(t, 60, cfg.Width)
		assert.Equal(t, "words", cfg.Granularity)
		assert.Equal(t, []string{NormSquashWhitespace}, cfg.Preprocess)
		assert.Equal(t, []string{NormSquashSpacesTabs, NormNFC}, cfg.Postprocess)
	})
	t.Run("unknown key", func(t *testing.T) {
		file := writeFile(t, dir, "unknown.toml", "widht = 60\n")
		_, err := LoadConfig(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "widht")
	})
	t.Run("bad normalizer", func(t *testing.T) {
		file := writeFile(t, dir, "norm.toml", `preprocess = ["lowercase"]`)
		_, err := LoadConfig(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lowercase")
	})
	t.Run("bad granularity", func(t *testing.T) {
		file := writeFile(t, dir, "gran.toml", `granularity = "sentences"`)
		_, err := LoadConfig(file)
		require.Error(t, err)
	})
	t.Run("same directives", func(t *testing.T) {
		file := writeFile(t, dir, "same.toml", `close_directive = "% BEGIN QUOTE"`)
		_, err := LoadConfig(file)
		require.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
		require.Error(t, err)
	})
}
