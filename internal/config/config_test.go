package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/strsim/internal/normalize"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultStemMinLengthMatchesNormalizer(t *testing.T) {
	cfg := Default()
	assert.Equal(t, normalize.DefaultStemMinLength, cfg.Normalize.StemMinLength)

	// a negative config value falls back to the same default in the normalizer
	n := normalize.New(normalize.Options{Stem: true, StemMinLength: -1})
	assert.Equal(t, cfg.Normalize.StemMinLength, n.Options().StemMinLength)
}

func TestLoadWithHome_NoFiles(t *testing.T) {
	cfg, err := LoadWithHome(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Source)
}

func TestLoadWithHome_ProjectKDL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, KDLFileName, "matcher {\n    algorithm \"jaccard\"\n}\n")

	cfg, err := LoadWithHome(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "jaccard", cfg.Matcher.Algorithm)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadWithHome_KDLWinsOverTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, KDLFileName, "matcher {\n    algorithm \"cosine\"\n}\n")
	writeFile(t, dir, TOMLFileName, "[matcher]\nalgorithm = \"jaccard\"\n")

	cfg, err := LoadWithHome(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "cosine", cfg.Matcher.Algorithm)
}

func TestLoadWithHome_HomeFallback(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, TOMLFileName, "[matcher]\nthreshold = 0.42\n")

	cfg, err := LoadWithHome(t.TempDir(), home)
	require.NoError(t, err)
	assert.Equal(t, 0.42, cfg.Matcher.Threshold)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.kdl", "matcher {\n    threshold 3.0\n}\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matcher.threshold")
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "matcher: {}")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.kdl"))
	assert.Error(t, err)
}

func TestLoadFile_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFileName, "[matcher]\nalgorithm = \"soundex\"\n")

	cfg, err := LoadFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "soundex", cfg.Matcher.Algorithm)
}
