package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "domanalyze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
packageRoot: file:///home/user/my-package/
entry: index.html
includeExternal: true
maxWarnings: 50
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:///home/user/my-package/", cfg.PackageRoot)
	assert.Equal(t, "index.html", cfg.Entry)
	assert.True(t, cfg.IncludeExternal)
	assert.Equal(t, 50, cfg.MaxWarnings)
	assert.Equal(t, "bower_components", defaultComponentDir(cfg))
}

func TestLoad_MissingEntryErrors(t *testing.T) {
	path := writeConfig(t, `packageRoot: file:///home/user/my-package/`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func defaultComponentDir(cfg *Config) string {
	if cfg.ComponentDir == "" {
		return "bower_components"
	}
	return cfg.ComponentDir
}
