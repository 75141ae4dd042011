package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/lsx/internal/style"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "metric", cfg.SizeFormat)
	assert.Equal(t, "name", cfg.Sort)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Reverse)
}

func TestLoadConfigFromDir(t *testing.T) {
	tmp := t.TempDir()
	content := `
size_format: binary
sort: size
reverse: true
header: true
palette:
  directory: cyan
`
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadConfigFromDir(tmp)
	require.NoError(t, err)

	assert.Equal(t, "binary", cfg.SizeFormat)
	assert.Equal(t, "size", cfg.Sort)
	assert.True(t, cfg.Reverse)
	assert.True(t, cfg.Header)
	assert.Equal(t, "cyan", cfg.Palette["directory"])

	// Untouched settings keep their defaults.
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte("sort: [broken"), 0o644))

	_, err := LoadConfigFromDir(tmp)
	assert.Error(t, err)
}

func TestBuildPalettePlain(t *testing.T) {
	cfg := DefaultConfig()
	palette, err := cfg.BuildPalette(false)
	require.NoError(t, err)
	assert.Equal(t, style.PlainPalette(), palette)
}

func TestBuildPaletteOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = map[string]string{"directory": "cyan"}

	palette, err := cfg.BuildPalette(true)
	require.NoError(t, err)
	assert.Equal(t, style.Cyan.Normal(), palette.Directory)

	// The rest of the palette keeps the colourful defaults.
	assert.Equal(t, style.ColourfulPalette().Executable, palette.Executable)
}

func TestBuildPaletteBadColour(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = map[string]string{"directory": "octarine"}

	_, err := cfg.BuildPalette(true)
	assert.Error(t, err)
}
