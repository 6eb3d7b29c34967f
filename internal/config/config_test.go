package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	want := &Config{
		SourceURL:  "https://example.com/cedict.txt.gz",
		DataDir:    dir,
		ToneColors: false,
	}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDirDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.True(t, cfg.ToneColors)
	assert.Equal(t, filepath.Join(dir, DictionaryFile), cfg.DictionaryPath())
}

func TestLoadDirFillsDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{SourceURL: "https://example.com/dict.gz"}
	require.NoError(t, cfg.Save(filepath.Join(dir, "config.yaml")))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got.DataDir, "empty data_dir falls back to the config dir")
	assert.Equal(t, "https://example.com/dict.gz", got.SourceURL)
}
