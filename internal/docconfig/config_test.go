package docconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "article", cfg.Parser.Doctype)
	require.Equal(t, "safe", cfg.Parser.SafeMode)
	require.Equal(t, "skip", cfg.Parser.AttributeMissing)
	require.Equal(t, "html", cfg.Convert.Backend)
	require.False(t, cfg.Parser.Strict)
}

func TestLoadNoConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(dir))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialYAMLOverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asciidoc.yml")
	content := "parser:\n  safe_mode: unsafe\nconvert:\n  backend: man\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "unsafe", cfg.Parser.SafeMode)
	require.Equal(t, "man", cfg.Convert.Backend)
	// Fields absent from the YAML keep their defaults.
	require.Equal(t, "article", cfg.Parser.Doctype)
	require.Equal(t, "skip", cfg.Parser.AttributeMissing)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asciidoc.yml")
	content := "convert:\n  backend: pdf\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDiscoverFindsFirstMatchingName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "asciidoc.yaml"), []byte("{}"), 0o644))

	found := Discover(dir)
	require.Equal(t, filepath.Join(dir, "asciidoc.yaml"), found)
}

func TestParserOptionsTranslatesEnums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.SafeMode = "server"
	cfg.Parser.Doctype = "manpage"
	cfg.Parser.AttributeMissing = "drop-line"

	opts := cfg.ParserOptions()
	require.Equal(t, "server", opts.SafeMode.String())
	require.Equal(t, "manpage", opts.Doctype.String())
}
